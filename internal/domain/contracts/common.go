// Package contracts holds the queries and commands accepted by the bus and
// the views returned by their handlers.
package contracts

import (
	"context"
	"time"
)

// Principal is the authenticated caller.
type Principal struct {
	UserID      uint
	Username    string
	Role        string
	MailAddress string
}

// IsAdmin reports whether the caller is a system administrator.
func (p Principal) IsAdmin() bool {
	return p.Role == "admin"
}

type principalKey struct{}

// WithPrincipal stores the caller in ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the caller stored in ctx.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// ServiceReceipt is returned by commands.
type ServiceReceipt struct {
	Identifier string    `json:"identifier" xml:"identifier"`
	EventDate  time.Time `json:"event_date" xml:"event_date"`
}

// BooleanResultView wraps a yes/no answer.
type BooleanResultView struct {
	Result bool `json:"result" xml:"result"`
}

// LetterheadListGetQuery 获取所有信头
type LetterheadListGetQuery struct{}

// LetterheadGetQuery 获取信头
type LetterheadGetQuery struct {
	Number int `json:"number" uri:"number" validate:"min=1,max=99"`
}

// LetterheadView 信头视图
type LetterheadView struct {
	Number        int    `json:"number" xml:"number"`
	Name          string `json:"name" xml:"name"`
	Line1         string `json:"line1" xml:"line1"`
	Line2         string `json:"line2" xml:"line2"`
	Line3         string `json:"line3" xml:"line3"`
	Line4         string `json:"line4" xml:"line4"`
	Line5         string `json:"line5" xml:"line5"`
	Line6         string `json:"line6" xml:"line6"`
	Line7         string `json:"line7" xml:"line7"`
	CompanyNumber string `json:"company_number" xml:"company_number"`
}

// LetterheadData is shared by add and modify.
type LetterheadData struct {
	Name          string `json:"name" validate:"required,max=256"`
	Line1         string `json:"line1" validate:"required,max=64"`
	Line2         string `json:"line2" validate:"max=64"`
	Line3         string `json:"line3" validate:"max=64"`
	Line4         string `json:"line4" validate:"max=64"`
	Line5         string `json:"line5" validate:"max=64"`
	Line6         string `json:"line6" validate:"max=64"`
	Line7         string `json:"line7" validate:"max=64"`
	CompanyNumber string `json:"company_number" validate:"max=32"`
}

// LetterheadAddCommand 添加信头
type LetterheadAddCommand struct {
	Number int `json:"number" validate:"min=1,max=99"`
	LetterheadData
}

// LetterheadModifyCommand 修改信头
type LetterheadModifyCommand struct {
	Number int `json:"number" uri:"number" validate:"min=1,max=99"`
	LetterheadData
}
