package valueobjects

// ContactInfo is the public contact block of an airline.
type ContactInfo struct {
	Phone   string
	Email   string
	Website string
}
