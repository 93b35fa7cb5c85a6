package domain

import (
	"github.com/sundialapp/sundial-backend/internal/domain/checkin"
	"github.com/sundialapp/sundial-backend/internal/domain/user"
)

type (
	User    = user.User
	CheckIn = checkin.CheckIn
)
