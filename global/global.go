package global

import (
	"context"
	"crypto/rsa"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
)

// InternalLogger for errors that should never happen in normal circumstances
var InternalLogger *log.Logger

// MonitorLogger for expected client-side problems worth watching
var MonitorLogger *log.Logger

// JwtKey used to sign jwt tokens
var JwtKey *rsa.PrivateKey

// JwtParseKey used to parse jwt tokens
var JwtParseKey *rsa.PublicKey

// AccessTokenDuration determines the validity window of a bearer token (30 days)
var AccessTokenDuration time.Duration = time.Hour * 24 * 30

// Context is the default context
var Context = context.Background()

// Validator validates incoming bodys of data
var Validator = validator.New()
