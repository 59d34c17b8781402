package dto

import (
	"github.com/guregu/null/v5"

	"github.com/printfarm/printfarm-backend/models"
)

type APISetting struct {
	Id    int64       `json:"id"`
	Key   string      `json:"key"`
	Value null.String `json:"value"`
}

func AdaptSettingDto(s models.Setting) APISetting {
	return APISetting{
		Id:    s.Id,
		Key:   s.Key,
		Value: null.StringFromPtr(s.Value),
	}
}

type CreateSettingBody struct {
	Key   string      `json:"key" binding:"required,max=120"`
	Value null.String `json:"value"`
}

func AdaptCreateSettingInput(body CreateSettingBody) models.CreateSettingInput {
	return models.CreateSettingInput{
		Key:   body.Key,
		Value: body.Value.Ptr(),
	}
}

type UpdateSettingBody struct {
	Key   null.String `json:"key" binding:"omitempty,max=120"`
	Value null.String `json:"value"`
}

func AdaptUpdateSettingInput(settingId int64, body UpdateSettingBody) models.UpdateSettingInput {
	return models.UpdateSettingInput{
		Id:    settingId,
		Key:   body.Key.Ptr(),
		Value: body.Value.Ptr(),
	}
}
