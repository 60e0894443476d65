package valueobjects

import "fmt"

type InquiryType string

const (
	InquiryGeneral      InquiryType = "general"
	InquiryBooking      InquiryType = "booking"
	InquiryCancellation InquiryType = "cancellation"
	InquiryRefund       InquiryType = "refund"
	InquiryComplaint    InquiryType = "complaint"
	InquiryFeedback     InquiryType = "feedback"
	InquirySupport      InquiryType = "support"
)

var validInquiryTypes = map[InquiryType]bool{
	InquiryGeneral:      true,
	InquiryBooking:      true,
	InquiryCancellation: true,
	InquiryRefund:       true,
	InquiryComplaint:    true,
	InquiryFeedback:     true,
	InquirySupport:      true,
}

func (t InquiryType) String() string {
	return string(t)
}

func (t InquiryType) IsValid() bool {
	return validInquiryTypes[t]
}

func NewInquiryType(s string) (InquiryType, error) {
	t := InquiryType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid inquiry type: %s", s)
	}
	return t, nil
}
