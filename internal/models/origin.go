package models

import "fmt"

// Origin identifies the external channel a transaction came from.
// It is a closed enumeration: normalization behaviour is looked up in
// the per-variant rule table below, never inferred from the key text.
type Origin string

const (
	OriginNubankPJPix Origin = "nubank_pj_pix"
	OriginNubankPFPix Origin = "nubank_pf_pix"
	OriginNubankCC    Origin = "nubank_cc"
	OriginPicPayPFPix Origin = "picpay_pf_pix"
	OriginPicPayPJPix Origin = "picpay_pj_pix"
	OriginManual      Origin = "manual"
)

// Channel buckets origins for the dashboard channel split.
type Channel int

const (
	// ChannelOther is counted in grand totals but not reported separately.
	ChannelOther Channel = iota
	// ChannelTransfer covers Pix-style instant transfer feeds.
	ChannelTransfer
	// ChannelCredit covers credit card statements.
	ChannelCredit
)

// OriginRule describes how rows from one origin are normalized.
type OriginRule struct {
	Display string
	Channel Channel
	// NegateAmounts flips the sign of every surviving amount. Credit card
	// statements list charges as positive numbers that represent money owed.
	NegateAmounts bool
	// DropDescriptions removes rows whose description contains one of
	// these substrings (case-insensitive). Used to strip bill payments
	// from credit card statements.
	DropDescriptions []string
}

var originRules = map[Origin]OriginRule{
	OriginNubankPJPix: {Display: "Nubank PJ", Channel: ChannelTransfer},
	OriginNubankPFPix: {Display: "Nubank PF", Channel: ChannelTransfer},
	OriginNubankCC: {
		Display:          "Nubank Cartão",
		Channel:          ChannelCredit,
		NegateAmounts:    true,
		DropDescriptions: []string{"pagamento recebido"},
	},
	OriginPicPayPFPix: {Display: "PicPay PF", Channel: ChannelTransfer},
	OriginPicPayPJPix: {Display: "PicPay PJ", Channel: ChannelTransfer},
	OriginManual:      {Display: "Manual", Channel: ChannelOther},
}

// AllOrigins lists every known origin in a stable order.
var AllOrigins = []Origin{
	OriginNubankPJPix,
	OriginNubankPFPix,
	OriginNubankCC,
	OriginPicPayPFPix,
	OriginPicPayPJPix,
	OriginManual,
}

// ParseOrigin validates an origin key from configuration or flags.
func ParseOrigin(key string) (Origin, error) {
	o := Origin(key)
	if _, ok := originRules[o]; !ok {
		return "", fmt.Errorf("unknown origin: %q", key)
	}
	return o, nil
}

// Rule returns the normalization rule for the origin. Unknown origins
// fall back to a pass-through rule so stored data never becomes unreadable.
func (o Origin) Rule() OriginRule {
	if rule, ok := originRules[o]; ok {
		return rule
	}
	return OriginRule{Display: string(o), Channel: ChannelOther}
}

// DisplayName returns the human-readable name for the origin.
func (o Origin) DisplayName() string {
	return o.Rule().Display
}

// IsFetchable reports whether the origin can be backed by a remote CSV
// link. Manual transactions are entered directly, never fetched.
func (o Origin) IsFetchable() bool {
	return o != OriginManual
}
