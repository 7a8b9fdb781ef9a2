package backend

import (
	"io"
)

type (
	AdoptionStatus    string
	ApplicationStatus string
)

const (
	AdoptionStatusAvailable AdoptionStatus = "Available"
	AdoptionStatusAdopted   AdoptionStatus = "Adopted"

	ApplicationStatusSubmitted ApplicationStatus = "Submitted"
	ApplicationStatusApproved  ApplicationStatus = "Approved"
	ApplicationStatusRejected  ApplicationStatus = "Rejected"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type Audit struct {
	CreatedAt string  `json:"created_at,omitempty"`
	CreatedBy string  `json:"created_by,omitempty"`
	UpdatedAt *string `json:"updated_at,omitempty"`
	UpdatedBy *string `json:"updated_by,omitempty"`
}

type Animal struct {
	Audit
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	Species        string         `json:"species"`
	Breed          string         `json:"breed"`
	Age            *int           `json:"age"`
	Gender         string         `json:"gender"`
	Description    *string        `json:"description"`
	PhotoURL       string         `json:"photo_url"`
	AdoptionStatus AdoptionStatus `json:"adoption_status"`
}

type AnimalInput struct {
	Name           string         `json:"name,omitempty"`
	Species        string         `json:"species,omitempty"`
	Breed          string         `json:"breed,omitempty"`
	Age            *int           `json:"age,omitempty"`
	Gender         string         `json:"gender,omitempty"`
	Description    *string        `json:"description,omitempty"`
	AdoptionStatus AdoptionStatus `json:"adoption_status,omitempty"`
}

type AnimalFilter struct {
	Page           int
	Limit          int
	Search         string
	Gender         string
	AdoptionStatus AdoptionStatus
}

type AnimalPage struct {
	Pagination
	Animals []Animal `json:"animals"`
}

type Image struct {
	FileName string
	Content  io.Reader
}

type Application struct {
	Audit
	ID          int               `json:"id"`
	AnimalID    int               `json:"animal_id"`
	AnimalName  string            `json:"animal_name,omitempty"`
	AdopterID   int               `json:"adopter_id,omitempty"`
	AdopterName string            `json:"adopter_name,omitempty"`
	Reason      *string           `json:"reason,omitempty"`
	Status      ApplicationStatus `json:"status"`
}

type ApplicationInput struct {
	AnimalID int     `json:"animal_id"`
	Reason   *string `json:"reason,omitempty"`
}

type ApplicationUpdate struct {
	Reason *string            `json:"reason,omitempty"`
	Status *ApplicationStatus `json:"application_status,omitempty"`
}

type ApplicationFilter struct {
	Page   int
	Limit  int
	Status ApplicationStatus
}

type ApplicationPage struct {
	Pagination
	Applications []Application `json:"applications"`
}

type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	UserType string  `json:"user_type,omitempty"`
}

type UserInput struct {
	Name     string  `json:"name,omitempty"`
	Email    string  `json:"email,omitempty"`
	Password string  `json:"password,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}

type UserFilter struct {
	Page   int
	Limit  int
	Search string
}

type UserPage struct {
	Pagination
	Users []User `json:"users"`
}

type AdopterPage struct {
	Pagination
	Adopters []User `json:"adopters"`
}

type DashboardSummary struct {
	TotalAnimals              int `json:"total_animals"`
	TotalPendingApplications  int `json:"total_pending_applications"`
	TotalApprovedApplications int `json:"total_approved_applications"`
	TotalAdopters             int `json:"total_adopters"`
}
