package certification

// Certification is a credential entry. Listing follows the explicit
// display order.
type Certification struct {
	ID            int64  `db:"id" json:"id"`
	Title         string `db:"title" json:"title"`
	Issuer        string `db:"issuer" json:"issuer"`
	Date          string `db:"date" json:"date"`
	Description   string `db:"description" json:"description"`
	Image         string `db:"image" json:"image"`
	CredentialURL string `db:"credential_url" json:"credentialUrl"`
	Order         int    `db:"order" json:"order"`
}
