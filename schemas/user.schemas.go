package schemas

// PublicUserSchema struct
type PublicUserSchema struct {
	UserID string
	Name   string
	Email  string
}

// UserWithStatusSchema struct
type UserWithStatusSchema struct {
	UserID             string
	Name               string
	Email              string
	IsFriend           bool
	HasIncomingRequest bool
	HasSentRequest     bool
}
