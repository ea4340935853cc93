package model

// Event references its organizer by user id. The reference is validated
// against the users service at write time only; deleting the organizer
// afterwards does not cascade.
type Event struct {
	ID          int    `json:"id"`
	OrganizerID int    `json:"organizerId"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
}

func (e *Event) RecordID() int      { return e.ID }
func (e *Event) SetRecordID(id int) { e.ID = id }

// EventPayload is the request body for event create and update.
type EventPayload struct {
	OrganizerID *int    `json:"organizerId"`
	Name        *string `json:"name"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Capacity    *int    `json:"capacity"`
}

func (p *EventPayload) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if p.OrganizerID == nil {
		errs.add("organizerId", MissingField)
	}
	if p.Name == nil {
		errs.add("name", MissingField)
	}
	if p.Date == nil {
		errs.add("date", MissingField)
	}
	if p.Location == nil {
		errs.add("location", MissingField)
	}
	if p.Description == nil {
		errs.add("description", MissingField)
	}
	if p.Capacity == nil {
		errs.add("capacity", MissingField)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (p *EventPayload) Record() *Event {
	return &Event{
		OrganizerID: *p.OrganizerID,
		Name:        *p.Name,
		Date:        *p.Date,
		Location:    *p.Location,
		Description: *p.Description,
		Capacity:    *p.Capacity,
	}
}
