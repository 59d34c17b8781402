package dbmodels

import (
	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/utils"
)

type DBSetting struct {
	Id    int64   `db:"id"`
	Key   string  `db:"key"`
	Value *string `db:"value"`
}

const TABLE_SETTINGS = "settings"

var SelectSettingColumn = utils.ColumnList[DBSetting]()

func AdaptSetting(db DBSetting) (models.Setting, error) {
	return models.Setting{
		Id:    db.Id,
		Key:   db.Key,
		Value: db.Value,
	}, nil
}
