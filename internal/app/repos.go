package app

import (
	"gorm.io/gorm"

	checkinrepo "github.com/sundialapp/sundial-backend/internal/data/repos/checkin"
	userrepo "github.com/sundialapp/sundial-backend/internal/data/repos/user"
	"github.com/sundialapp/sundial-backend/internal/platform/logger"
)

type Repos struct {
	Users    userrepo.UserRepo
	CheckIns checkinrepo.CheckInRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Users:    userrepo.NewUserRepo(db, log),
		CheckIns: checkinrepo.NewCheckInRepo(db, log),
	}
}
