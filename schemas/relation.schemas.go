package schemas

// SendRequestSchema struct
type SendRequestSchema struct {
	TargetUserID string `json:"targetUserId" validate:"required"`
}

// AcceptRequestSchema struct
type AcceptRequestSchema struct {
	FromUserID string `json:"fromUserId" validate:"required"`
}

// RelationsSchema struct
type RelationsSchema struct {
	Friends  []PublicUserSchema
	Incoming []PublicUserSchema
	Outgoing []PublicUserSchema
}
