package models

// Provider stores additional profile information for a provider-type user.
// Most flows look it up by UserID rather than its own ID.
type Provider struct {
	ID            string `bson:"id" json:"id"`
	UserID        string `bson:"userId" json:"userId"`
	FirstName     string `bson:"firstName" json:"firstName"`
	LastName      string `bson:"lastName" json:"lastName"`
	Location      string `bson:"location" json:"location"`
	LicenseNumber int64  `bson:"licenseNumber" json:"licenseNumber"`
	CompanyName   string `bson:"companyName" json:"companyName"`
	ServiceType   string `bson:"serviceType" json:"serviceType"`
}

// DisplayName is the provider's public-facing name.
func (p *Provider) DisplayName() string {
	return p.FirstName + " " + p.LastName
}
