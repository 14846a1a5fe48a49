package model

import (
	"time"

	"github.com/muhammadheryan/home-service/constant"
)

// ServiceEntity represents the services table / collection entity
type ServiceEntity struct {
	ID          string `db:"id" bson:"_id" json:"id"`
	Email       string `db:"email" bson:"email" json:"email"`
	PhoneNumber string `db:"phone_number" bson:"phone_number" json:"phoneNumber"`
	ISD         string `db:"isd" bson:"isd" json:"ISD"`

	EmailVerified bool `db:"email_verified" bson:"email_verified" json:"emailVerified"`
	PhoneVerified bool `db:"phone_verified" bson:"phone_verified" json:"phoneVerified"`

	OTPCodeHash      *string           `db:"otp_code_hash" bson:"otp_code_hash" json:"-"`
	OTPCodeExpiresAt *time.Time        `db:"otp_code_expires_at" bson:"otp_code_expires_at" json:"-"`
	OTPChannel       *constant.Channel `db:"otp_channel" bson:"otp_channel" json:"-"`

	AddressLineOne string     `db:"address_line_one" bson:"address_line_one" json:"addressLineOne"`
	AddressLineTwo string     `db:"address_line_two" bson:"address_line_two" json:"addressLineTwo"`
	Country        string     `db:"country" bson:"country" json:"country"`
	City           string     `db:"city" bson:"city" json:"city"`
	Area           string     `db:"area" bson:"area" json:"area"`
	Street         string     `db:"street" bson:"street" json:"street"`
	BuildingNum    string     `db:"building_num" bson:"building_num" json:"buildingNum"`
	FlatNum        string     `db:"flat_num" bson:"flat_num" json:"flatNum"`
	Type           string     `db:"type" bson:"type" json:"type"`
	FullName       string     `db:"full_name" bson:"full_name" json:"fullName"`
	UserNote       string     `db:"user_note" bson:"user_note" json:"userNote"`
	PeriodDate     *time.Time `db:"period_date" bson:"period_date" json:"periodDate,omitempty"`
	PeriodFullTime string     `db:"period_full_time" bson:"period_full_time" json:"periodFullTime"`

	AdminNote         string `db:"admin_note" bson:"admin_note" json:"adminNote"`
	AdminInternalNote string `db:"admin_internal_note" bson:"admin_internal_note" json:"adminInternalNote"`
	AdminMessage      string `db:"admin_message" bson:"admin_message" json:"adminMessage"`
	Message           string `db:"message" bson:"message" json:"message"`

	ServiceCodeHash *string `db:"service_code_hash" bson:"service_code_hash,omitempty" json:"-"`
	Locale          string  `db:"locale" bson:"locale" json:"locale"`

	Status    constant.ServiceStatus `db:"status" bson:"status" json:"status"`
	CreatedAt time.Time              `db:"created_at" bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time              `db:"updated_at" bson:"updated_at" json:"updatedAt"`
}

// HasActiveOTP reports whether all OTP fields are present.
func (s *ServiceEntity) HasActiveOTP() bool {
	return s.OTPCodeHash != nil && s.OTPCodeExpiresAt != nil && s.OTPChannel != nil
}

// PreferredContact picks the delivery target for customer notifications:
// a verified email, then a verified phone, then (unless verifiedOnly) any
// stored email or phone.
func (s *ServiceEntity) PreferredContact(verifiedOnly bool) (constant.Channel, string, bool) {
	switch {
	case s.EmailVerified && s.Email != "":
		return constant.ChannelEmail, s.Email, true
	case s.PhoneVerified && s.PhoneNumber != "":
		return constant.ChannelPhone, s.PhoneNumber, true
	case verifiedOnly:
		return "", "", false
	case s.Email != "":
		return constant.ChannelEmail, s.Email, true
	case s.PhoneNumber != "":
		return constant.ChannelPhone, s.PhoneNumber, true
	}
	return "", "", false
}

// ContactFilter selects the latest request for a contact identifier.
type ContactFilter struct {
	Email       string
	PhoneNumber string
}

// DeleteFilter is the predicate accepted by ServiceRepository.DeleteWhere.
// All set conditions must hold; an empty filter matches nothing.
type DeleteFilter struct {
	ID             string
	Statuses       []constant.ServiceStatus
	UpdatedBefore  *time.Time
	CreatedBefore  *time.Time
	UnverifiedOnly bool
}

func (f DeleteFilter) Empty() bool {
	return f.ID == "" && len(f.Statuses) == 0 && f.UpdatedBefore == nil && f.CreatedBefore == nil && !f.UnverifiedOnly
}

// ServiceUpdate carries the subset of fields to overwrite. Nil fields are left untouched.
type ServiceUpdate struct {
	Email          *string
	PhoneNumber    *string
	ISD            *string
	EmailVerified  *bool
	PhoneVerified  *bool
	AddressLineOne *string
	AddressLineTwo *string
	Country        *string
	City           *string
	Area           *string
	Street         *string
	BuildingNum    *string
	FlatNum        *string
	Type           *string
	FullName       *string
	UserNote       *string
	PeriodDate     *time.Time
	PeriodFullTime *string

	Status            *constant.ServiceStatus
	Message           *string
	AdminNote         *string
	AdminInternalNote *string
	AdminMessage      *string

	// WhereStatus restricts the update to records currently in this status.
	WhereStatus *constant.ServiceStatus
	UpdatedAt   time.Time
}

type ColumnValue struct {
	Column string
	Value  any
}

// Columns lists the provided fields in a stable order, keyed by storage column name.
func (u *ServiceUpdate) Columns() []ColumnValue {
	cols := make([]ColumnValue, 0, 24)
	addStr := func(col string, v *string) {
		if v != nil {
			cols = append(cols, ColumnValue{Column: col, Value: *v})
		}
	}
	addBool := func(col string, v *bool) {
		if v != nil {
			cols = append(cols, ColumnValue{Column: col, Value: *v})
		}
	}

	addStr("email", u.Email)
	addStr("phone_number", u.PhoneNumber)
	addStr("isd", u.ISD)
	addBool("email_verified", u.EmailVerified)
	addBool("phone_verified", u.PhoneVerified)
	addStr("address_line_one", u.AddressLineOne)
	addStr("address_line_two", u.AddressLineTwo)
	addStr("country", u.Country)
	addStr("city", u.City)
	addStr("area", u.Area)
	addStr("street", u.Street)
	addStr("building_num", u.BuildingNum)
	addStr("flat_num", u.FlatNum)
	addStr("type", u.Type)
	addStr("full_name", u.FullName)
	addStr("user_note", u.UserNote)
	if u.PeriodDate != nil {
		cols = append(cols, ColumnValue{Column: "period_date", Value: *u.PeriodDate})
	}
	addStr("period_full_time", u.PeriodFullTime)
	if u.Status != nil {
		cols = append(cols, ColumnValue{Column: "status", Value: string(*u.Status)})
	}
	addStr("message", u.Message)
	addStr("admin_note", u.AdminNote)
	addStr("admin_internal_note", u.AdminInternalNote)
	addStr("admin_message", u.AdminMessage)
	return cols
}

// EmailOTPRequest starts intake through an email address.
type EmailOTPRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

// PhoneOTPRequest starts intake through a phone number.
type PhoneOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,min=4,max=20"`
	ISD         string `json:"ISD" validate:"required,isd"`
}

type IssueOTPRequest struct {
	Channel     constant.Channel
	Email       string
	PhoneNumber string
	ISD         string
	Locale      string
}

type IssueOTPResponse struct {
	ServiceID   string           `json:"serviceId"`
	Channel     constant.Channel `json:"channel"`
	Destination string           `json:"destination"`
	ExpiresAt   time.Time        `json:"expiresAt"`
}

type VerifyOTPRequest struct {
	ServiceID   string           `json:"serviceId" validate:"omitempty,uuid"`
	Channel     constant.Channel `json:"channel" validate:"required,oneof=email phone"`
	Email       string           `json:"email" validate:"omitempty,email"`
	PhoneNumber string           `json:"phoneNumber" validate:"omitempty,min=4,max=20"`
	ISD         string           `json:"ISD" validate:"omitempty,isd"`
	Code        string           `json:"otpCode" validate:"required,otpcode"`
}

type VerifyOTPResponse struct {
	ServiceID string           `json:"serviceId"`
	Channel   constant.Channel `json:"channel"`
	Verified  bool             `json:"verified"`
}

// FollowUpRequest holds intake detail; omitted fields keep their stored value.
type FollowUpRequest struct {
	AddressLineOne *string    `json:"addressLineOne" validate:"omitempty,min=2,max=100"`
	AddressLineTwo *string    `json:"addressLineTwo" validate:"omitempty,min=2,max=100"`
	Country        *string    `json:"country" validate:"omitempty,min=2,max=50"`
	City           *string    `json:"city" validate:"omitempty,min=2,max=50"`
	Area           *string    `json:"area" validate:"omitempty,max=100"`
	Street         *string    `json:"street" validate:"omitempty,max=100"`
	BuildingNum    *string    `json:"buildingNum" validate:"omitempty,max=20"`
	FlatNum        *string    `json:"flatNum" validate:"omitempty,max=20"`
	Type           *string    `json:"type" validate:"omitempty,min=2,max=50"`
	FullName       *string    `json:"fullName" validate:"omitempty,min=2,max=50"`
	Email          *string    `json:"email" validate:"omitempty,email,max=254"`
	PhoneNumber    *string    `json:"phoneNumber" validate:"omitempty,min=4,max=20"`
	ISD            *string    `json:"ISD" validate:"omitempty,isd"`
	UserNote       *string    `json:"userNote" validate:"omitempty,min=2,max=500"`
	PeriodDate     *time.Time `json:"periodDate"`
	PeriodFullTime *string    `json:"periodFullTime" validate:"omitempty,max=50"`
}

type FollowUpResponse struct {
	Service           *ServiceEntity `json:"service"`
	InquiryCodeIssued bool           `json:"inquiryCodeIssued"`
	Warning           string         `json:"-"`
}

// InquiryView is the only projection disclosed to unauthenticated callers.
type InquiryView struct {
	FullName  string                 `json:"fullName"`
	Type      string                 `json:"type"`
	Status    constant.ServiceStatus `json:"status"`
	Message   string                 `json:"message"`
	AdminNote string                 `json:"adminNote"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

type ServiceListRequest struct {
	Status constant.ServiceStatus `validate:"required,servicestatus"`
	Page   int                    `validate:"gte=0"`
	Limit  int                    `validate:"gte=0,lte=100"`
}

type ServiceListResponse struct {
	Results      []ServiceEntity `json:"results"`
	CurrentPage  int             `json:"currentPage"`
	TotalPages   int             `json:"totalPages"`
	ResultsCount int             `json:"resultsCount"`
	TotalResults int64           `json:"totalResults"`
}

// TransitionRequest is the tagged request accepted by the lifecycle state machine.
type TransitionRequest struct {
	Kind   constant.TransitionKind
	Target constant.ServiceStatus
	Action constant.FieldAction
	Notify bool
}

type TransitionResult struct {
	Service  *ServiceEntity `json:"service"`
	Notified bool           `json:"notified"`
	Warning  string         `json:"-"`
}

type StatusRequest struct {
	Status constant.ServiceStatus `json:"status" validate:"required,servicestatus"`
	Notify bool                   `json:"notify"`
}

type FieldUpdateRequest struct {
	Action constant.FieldAction `json:"action" validate:"required,fieldaction"`
}

type NotesRequest struct {
	AdminNote         *string `json:"adminNote" validate:"omitempty,min=2,max=500"`
	AdminInternalNote *string `json:"adminInternalNote" validate:"omitempty,min=2,max=500"`
}

type AdminMessageRequest struct {
	Message string `json:"message" validate:"required,min=2,max=2000"`
}

type AdminMessageResult struct {
	Service  *ServiceEntity `json:"service"`
	Notified bool           `json:"notified"`
	Warning  string         `json:"-"`
}

type PurgeResult struct {
	Terminal   int64 `json:"terminal"`
	Unverified int64 `json:"unverified"`
}

// Notification is a rendered message ready for a delivery channel.
type Notification struct {
	Channel     constant.Channel
	Destination string
	Subject     string
	Body        string
}
