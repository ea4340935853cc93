package model

// UserRef points at a user record owned by the users service.
type UserRef struct {
	ID int `json:"id"`
}

// Notification targets a list of users. Every referenced id must resolve in
// the users service at write time.
type Notification struct {
	ID      int       `json:"id"`
	Users   []UserRef `json:"users"`
	Type    string    `json:"type"`
	Content string    `json:"content"`
	Status  string    `json:"status"`
}

func (n *Notification) RecordID() int      { return n.ID }
func (n *Notification) SetRecordID(id int) { n.ID = id }

// NotificationPayload is the request body for notification create and update.
// An empty users list is valid; a missing one is not.
type NotificationPayload struct {
	Users   *[]UserRef `json:"users"`
	Type    *string    `json:"type"`
	Content *string    `json:"content"`
	Status  *string    `json:"status"`
}

func (p *NotificationPayload) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if p.Users == nil {
		errs.add("users", MissingField)
	}
	if p.Type == nil {
		errs.add("type", MissingField)
	}
	if p.Content == nil {
		errs.add("content", MissingField)
	}
	if p.Status == nil {
		errs.add("status", MissingField)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (p *NotificationPayload) Record() *Notification {
	return &Notification{
		Users:   *p.Users,
		Type:    *p.Type,
		Content: *p.Content,
		Status:  *p.Status,
	}
}
