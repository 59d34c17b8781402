package dbmodels

import (
	"time"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/utils"
)

type DBUser struct {
	Id             int64     `db:"id"`
	Email          string    `db:"email"`
	HashedPassword string    `db:"hashed_password"`
	CreatedAt      time.Time `db:"created_at"`
}

const TABLE_USERS = "users"

var SelectUserColumn = utils.ColumnList[DBUser]()

func AdaptUser(db DBUser) (models.User, error) {
	return models.User{
		Id:             db.Id,
		Email:          db.Email,
		HashedPassword: db.HashedPassword,
		CreatedAt:      db.CreatedAt,
	}, nil
}
