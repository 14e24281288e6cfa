package domain

// EventType is the kind of marketing interaction a touchpoint records
type EventType string

// EventCategory groups event types by the channel or stage they belong to
type EventCategory string

const (
	CategoryEmail      EventCategory = "email"
	CategorySMS        EventCategory = "sms"
	CategoryWeb        EventCategory = "web"
	CategoryConversion EventCategory = "conversion"
	CategoryJourney    EventCategory = "journey"
	CategorySocial     EventCategory = "social"
)

const (
	EmailSent         EventType = "email_sent"
	EmailDelivered    EventType = "email_delivered"
	EmailBounced      EventType = "email_bounced"
	EmailOpened       EventType = "email_opened"
	EmailClicked      EventType = "email_clicked"
	EmailUnsubscribed EventType = "email_unsubscribed"
	EmailComplained   EventType = "email_complained"

	SMSSent      EventType = "sms_sent"
	SMSDelivered EventType = "sms_delivered"
	SMSFailed    EventType = "sms_failed"
	SMSClicked   EventType = "sms_clicked"

	PageView      EventType = "page_view"
	FormSubmit    EventType = "form_submit"
	LinkClick     EventType = "link_click"
	VideoStart    EventType = "video_start"
	VideoComplete EventType = "video_complete"

	LeadCreated        EventType = "lead_created"
	OpportunityCreated EventType = "opportunity_created"
	PurchaseCompleted  EventType = "purchase_completed"
	CartAbandoned      EventType = "cart_abandoned"

	JourneyEntered       EventType = "journey_entered"
	JourneyStepCompleted EventType = "journey_step_completed"
	JourneyExited        EventType = "journey_exited"

	SocialLike    EventType = "social_like"
	SocialShare   EventType = "social_share"
	SocialComment EventType = "social_comment"
)

var eventCategories = map[EventType]EventCategory{
	EmailSent:         CategoryEmail,
	EmailDelivered:    CategoryEmail,
	EmailBounced:      CategoryEmail,
	EmailOpened:       CategoryEmail,
	EmailClicked:      CategoryEmail,
	EmailUnsubscribed: CategoryEmail,
	EmailComplained:   CategoryEmail,

	SMSSent:      CategorySMS,
	SMSDelivered: CategorySMS,
	SMSFailed:    CategorySMS,
	SMSClicked:   CategorySMS,

	PageView:      CategoryWeb,
	FormSubmit:    CategoryWeb,
	LinkClick:     CategoryWeb,
	VideoStart:    CategoryWeb,
	VideoComplete: CategoryWeb,

	LeadCreated:        CategoryConversion,
	OpportunityCreated: CategoryConversion,
	PurchaseCompleted:  CategoryConversion,
	CartAbandoned:      CategoryConversion,

	JourneyEntered:       CategoryJourney,
	JourneyStepCompleted: CategoryJourney,
	JourneyExited:        CategoryJourney,

	SocialLike:    CategorySocial,
	SocialShare:   CategorySocial,
	SocialComment: CategorySocial,
}

// IsValid reports whether t is one of the known event types
func (t EventType) IsValid() bool {
	_, ok := eventCategories[t]
	return ok
}

// Category returns the group t belongs to, or "" for unknown types
func (t EventType) Category() EventCategory {
	return eventCategories[t]
}
