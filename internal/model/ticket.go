package model

// Ticket references its buyer and event by id in the users and events
// services respectively.
type Ticket struct {
	ID      int    `json:"id"`
	BuyerID int    `json:"buyerId"`
	EventID int    `json:"eventId"`
	Type    string `json:"type"`
	Price   int    `json:"price"`
	Status  string `json:"status"`
}

func (t *Ticket) RecordID() int      { return t.ID }
func (t *Ticket) SetRecordID(id int) { t.ID = id }

// TicketPayload is the request body for ticket create and update.
type TicketPayload struct {
	BuyerID *int    `json:"buyerId"`
	EventID *int    `json:"eventId"`
	Type    *string `json:"type"`
	Price   *int    `json:"price"`
	Status  *string `json:"status"`
}

func (p *TicketPayload) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if p.BuyerID == nil {
		errs.add("buyerId", MissingField)
	}
	if p.EventID == nil {
		errs.add("eventId", MissingField)
	}
	if p.Type == nil {
		errs.add("type", MissingField)
	}
	if p.Price == nil {
		errs.add("price", MissingField)
	}
	if p.Status == nil {
		errs.add("status", MissingField)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (p *TicketPayload) Record() *Ticket {
	return &Ticket{
		BuyerID: *p.BuyerID,
		EventID: *p.EventID,
		Type:    *p.Type,
		Price:   *p.Price,
		Status:  *p.Status,
	}
}
