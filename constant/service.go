package constant

type ServiceStatus string

const (
	ServiceStatusPending    ServiceStatus = "pending"
	ServiceStatusInProgress ServiceStatus = "in-progress"
	ServiceStatusFinished   ServiceStatus = "finished"
	ServiceStatusCancelled  ServiceStatus = "cancelled"
)

// ServiceStatuses lists every status a request can hold, in lifecycle order.
var ServiceStatuses = []ServiceStatus{
	ServiceStatusPending,
	ServiceStatusInProgress,
	ServiceStatusFinished,
	ServiceStatusCancelled,
}

func (s ServiceStatus) Valid() bool {
	for _, st := range ServiceStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Terminal statuses are eligible for the retention sweep.
func (s ServiceStatus) Terminal() bool {
	return s == ServiceStatusFinished || s == ServiceStatusCancelled
}

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPhone Channel = "phone"
)

func (c Channel) Valid() bool {
	return c == ChannelEmail || c == ChannelPhone
}

// FieldAction is an on-site progress update only legal while a service is in progress.
type FieldAction string

const (
	FieldActionEnRoute              FieldAction = "en-route"
	FieldActionArrived              FieldAction = "arrived"
	FieldActionAwaitingConfirmation FieldAction = "awaiting-confirmation"
)

var FieldActions = []FieldAction{
	FieldActionEnRoute,
	FieldActionArrived,
	FieldActionAwaitingConfirmation,
}

func (a FieldAction) Valid() bool {
	for _, fa := range FieldActions {
		if fa == a {
			return true
		}
	}
	return false
}

type TransitionKind string

const (
	TransitionStatus      TransitionKind = "status"
	TransitionFieldUpdate TransitionKind = "field-update"
)

type VerificationPolicy string

const (
	VerificationAny   VerificationPolicy = "any"
	VerificationEmail VerificationPolicy = "email"
	VerificationPhone VerificationPolicy = "phone"
	VerificationAll   VerificationPolicy = "all"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
