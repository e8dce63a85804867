package models

import "time"

type Media struct {
	ID                  int       `json:"media_id"`
	AcademicTermID      int       `json:"academic_term_id"`
	UploadedByOfficerID int       `json:"uploaded_by_officer_id"`
	DateUploaded        time.Time `json:"date_uploaded"`

	ImageKey *string `json:"-" db:"image_key"`
	ImageURL *string `json:"image_url,omitempty" db:"-"`
}
