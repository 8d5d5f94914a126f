package paymentpipe

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = 978

const udfCount = 5

type RequiredAction int

const (
	ActionPurchase      RequiredAction = 1
	ActionCredit        RequiredAction = 2
	ActionAuthorization RequiredAction = 4
	ActionCapture       RequiredAction = 5
	ActionVoid          RequiredAction = 9
)

var actionNames = map[RequiredAction]string{
	ActionPurchase:      "PURCHASE",
	ActionCredit:        "CREDIT",
	ActionAuthorization: "AUTHORIZATION",
	ActionCapture:       "CAPTURE",
	ActionVoid:          "VOID",
}

func (a RequiredAction) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}

	return strconv.Itoa(int(a))
}

func (a RequiredAction) Valid() bool {
	_, ok := actionNames[a]
	return ok
}

// ParseRequiredAction accepts an action name (any case) or its numeric code.
func ParseRequiredAction(s string) (RequiredAction, error) {
	s = strings.TrimSpace(s)

	if code, err := strconv.Atoi(s); err == nil {
		if action := RequiredAction(code); action.Valid() {
			return action, nil
		}

		return 0, invalidArgument("unknown action code %d", code)
	}

	for action, name := range actionNames {
		if strings.EqualFold(name, s) {
			return action, nil
		}
	}

	return 0, invalidArgument("unknown action %q", s)
}

type Language int

const (
	LanguageITA Language = iota
	LanguageUSA
	LanguageFRA
	LanguageDEU
	LanguageESP
	LanguageSLO
)

var languageNames = [...]string{
	LanguageITA: "ITA",
	LanguageUSA: "USA",
	LanguageFRA: "FRA",
	LanguageDEU: "DEU",
	LanguageESP: "ESP",
	LanguageSLO: "SLO",
}

func (l Language) String() string {
	if l.Valid() {
		return languageNames[l]
	}

	return "Language(" + strconv.Itoa(int(l)) + ")"
}

func (l Language) Valid() bool {
	return l >= 0 && int(l) < len(languageNames)
}

func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	for i, name := range languageNames {
		if strings.EqualFold(name, s) {
			return Language(i), nil
		}
	}

	return 0, invalidArgument("unknown language %q", s)
}

// PaymentInitMessage is the initialization message sent to PaymentInitHTTPServlet.
// It is never modified once built.
type PaymentInitMessage struct {
	id          string
	password    string
	action      RequiredAction
	amount      decimal.Decimal
	currency    int
	language    Language
	responseURL *url.URL
	errorURL    *url.URL
	trackID     string
	udf         [udfCount]string
}

type MessageOption func(*PaymentInitMessage) error

// WithCurrency sets the ISO-4217 numeric currency code. Codes outside 1..999 are not sent.
func WithCurrency(currency int) MessageOption {
	return func(m *PaymentInitMessage) error {
		m.currency = currency
		return nil
	}
}

// WithUDF sets user defined field n (1..5).
func WithUDF(n int, value string) MessageOption {
	return func(m *PaymentInitMessage) error {
		if n < 1 || n > udfCount {
			return invalidArgument("udf index %d out of range", n)
		}

		m.udf[n-1] = value
		return nil
	}
}

func NewPaymentInitMessage(
	id string,
	password string,
	action RequiredAction,
	amount decimal.Decimal,
	language Language,
	responseURL *url.URL,
	errorURL *url.URL,
	trackID string,
	opts ...MessageOption,
) (*PaymentInitMessage, error) {
	if !action.Valid() {
		return nil, invalidArgument("unknown action %d", int(action))
	}

	if !language.Valid() {
		return nil, invalidArgument("unknown language %d", int(language))
	}

	if responseURL != nil && !responseURL.IsAbs() {
		return nil, fmt.Errorf("%w: response url %q is not absolute", ErrInvalidURL, responseURL.String())
	}

	if errorURL != nil && !errorURL.IsAbs() {
		return nil, fmt.Errorf("%w: error url %q is not absolute", ErrInvalidURL, errorURL.String())
	}

	m := &PaymentInitMessage{
		id:          id,
		password:    password,
		action:      action,
		amount:      amount,
		currency:    DefaultCurrency,
		language:    language,
		responseURL: cloneURL(responseURL),
		errorURL:    cloneURL(errorURL),
		trackID:     trackID,
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *PaymentInitMessage) ID() string {
	return m.id
}

func (m *PaymentInitMessage) Password() string {
	return m.password
}

func (m *PaymentInitMessage) Action() RequiredAction {
	return m.action
}

func (m *PaymentInitMessage) Amount() decimal.Decimal {
	return m.amount
}

func (m *PaymentInitMessage) Currency() int {
	return m.currency
}

func (m *PaymentInitMessage) Language() Language {
	return m.language
}

func (m *PaymentInitMessage) ResponseURL() *url.URL {
	return cloneURL(m.responseURL)
}

func (m *PaymentInitMessage) ErrorURL() *url.URL {
	return cloneURL(m.errorURL)
}

func (m *PaymentInitMessage) TrackID() string {
	return m.trackID
}

// UDF returns user defined field n (1..5), or "" when n is out of range.
func (m *PaymentInitMessage) UDF(n int) string {
	if n < 1 || n > udfCount {
		return ""
	}

	return m.udf[n-1]
}

// Encode serializes the message as a form body. Field order and the
// omission of empty fields are part of the gateway contract.
func (m *PaymentInitMessage) Encode() string {
	var f formBuilder

	if m.id != "" {
		f.add("id", m.id)
	}
	if m.password != "" {
		f.add("password", m.password)
	}
	if m.amount.IsPositive() {
		f.add("amt", m.amount.StringFixed(2))
	}
	if m.currency > 0 && m.currency <= 999 {
		f.add("currencycode", fmt.Sprintf("%03d", m.currency))
	}

	f.add("action", strconv.Itoa(int(m.action)))
	f.add("langid", strings.ToUpper(m.language.String()))

	if m.responseURL != nil {
		f.add("responseURL", absoluteURI(m.responseURL))
	}
	if m.errorURL != nil {
		f.add("errorURL", absoluteURI(m.errorURL))
	}
	if m.trackID != "" {
		f.add("trackid", m.trackID)
	}

	for i, value := range m.udf {
		if value != "" {
			f.add("udf"+strconv.Itoa(i+1), value)
		}
	}

	return f.String()
}

type formBuilder struct {
	sb strings.Builder
}

func (f *formBuilder) add(key, value string) {
	if f.sb.Len() > 0 {
		f.sb.WriteByte('&')
	}

	f.sb.WriteString(key)
	f.sb.WriteByte('=')
	f.sb.WriteString(escapeDataString(value))
}

func (f *formBuilder) String() string {
	return f.sb.String()
}

// escapeDataString keeps only RFC 3986 unreserved characters and encodes spaces as %20.
func escapeDataString(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func absoluteURI(u *url.URL) string {
	if u.Opaque == "" && u.Path == "" && u.RawPath == "" {
		c := *u
		c.Path = "/"
		return c.String()
	}

	return u.String()
}

func cloneURL(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}

	c := *u
	if u.User != nil {
		user := *u.User
		c.User = &user
	}

	return &c
}
