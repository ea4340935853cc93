package model

// User is a person known to the mesh. Organizers may additionally own
// events; the flag is consulted remotely by the events service before an
// event write is accepted.
type User struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	IsOrganizer bool   `json:"isOrganizer"`
}

func (u *User) RecordID() int      { return u.ID }
func (u *User) SetRecordID(id int) { u.ID = id }

// UserPayload is the request body for user create and update.
type UserPayload struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	IsOrganizer *bool   `json:"isOrganizer"`
}

func (p *UserPayload) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if p.Name == nil {
		errs.add("name", MissingField)
	}
	if p.Email == nil {
		errs.add("email", MissingField)
	}
	if p.Phone == nil {
		errs.add("phone", MissingField)
	}
	if p.IsOrganizer == nil {
		errs.add("isOrganizer", MissingField)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Record converts a validated payload into a record without an id.
func (p *UserPayload) Record() *User {
	return &User{
		Name:        *p.Name,
		Email:       *p.Email,
		Phone:       *p.Phone,
		IsOrganizer: *p.IsOrganizer,
	}
}
