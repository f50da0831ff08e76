package messaging

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WelcomeLetter is published when a household member is created. The mail
// service sends the activation code to the member.
type WelcomeLetter struct {
	HouseholdMemberID uuid.UUID `json:"household_member_id"`
	MailAddress       string    `json:"mail_address"`
	ActivationCode    string    `json:"activation_code"`
	TranslationInfoID uuid.UUID `json:"translation_info_id"`
	InvitedBy         string    `json:"invited_by,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// MembershipChanged is published after a membership upgrade.
type MembershipChanged struct {
	HouseholdMemberID uuid.UUID `json:"household_member_id"`
	MailAddress       string    `json:"mail_address"`
	Membership        string    `json:"membership"`
	ExpiresAt         time.Time `json:"expires_at"`
	PaymentReference  string    `json:"payment_reference"`
}

// PostingAdded is published for every new posting line.
type PostingAdded struct {
	Accounting    int             `json:"accounting"`
	RunningNumber int             `json:"running_number"`
	Date          time.Time       `json:"date"`
	Account       string          `json:"account"`
	BudgetAccount string          `json:"budget_account,omitempty"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Warnings      []string        `json:"warnings,omitempty"`
}
