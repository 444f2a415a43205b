package consts

const (
	// AmountTolerance bounds the accepted gap between the client-quoted
	// amount and the server-computed price, in currency units.
	AmountTolerance = 0.01

	// DefaultInvestorLevel is the starting level of a fresh profile.
	DefaultInvestorLevel = 1
)

const (
	RoleAdmin = "ADMIN"
)

const (
	AvatarMaxSize   = 5 << 20
	AvatarThumbSize = 150
)
