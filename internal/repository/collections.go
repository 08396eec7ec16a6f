package repository

// Collection names. "appertments" and "cupons" are kept for compatibility
// with existing data.
const (
	ApartmentsCollection    = "appertments"
	UsersCollection         = "users"
	MembersCollection       = "members"
	AgreementsCollection    = "agreements"
	AnnouncementsCollection = "announcements"
	CouponsCollection       = "cupons"
	PaymentsCollection      = "payments"
	PaymentInfoCollection   = "paymentsInfo"
)
