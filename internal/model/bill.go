package model

// Bill references the billed user and the event the charge belongs to.
type Bill struct {
	ID      int     `json:"id"`
	UserID  int     `json:"userId"`
	EventID int     `json:"eventId"`
	Amount  float64 `json:"amount"`
	Details string  `json:"details"`
	Date    string  `json:"date"`
}

func (b *Bill) RecordID() int      { return b.ID }
func (b *Bill) SetRecordID(id int) { b.ID = id }

// BillPayload is the request body for bill create and update.
type BillPayload struct {
	UserID  *int     `json:"userId"`
	EventID *int     `json:"eventId"`
	Amount  *float64 `json:"amount"`
	Details *string  `json:"details"`
	Date    *string  `json:"date"`
}

func (p *BillPayload) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if p.UserID == nil {
		errs.add("userId", MissingField)
	}
	if p.EventID == nil {
		errs.add("eventId", MissingField)
	}
	if p.Amount == nil {
		errs.add("amount", MissingField)
	}
	if p.Details == nil {
		errs.add("details", MissingField)
	}
	if p.Date == nil {
		errs.add("date", MissingField)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (p *BillPayload) Record() *Bill {
	return &Bill{
		UserID:  *p.UserID,
		EventID: *p.EventID,
		Amount:  *p.Amount,
		Details: *p.Details,
		Date:    *p.Date,
	}
}
