package models

type Setting struct {
	Id    int64
	Key   string
	Value *string
}

type CreateSettingInput struct {
	Key   string
	Value *string
}

type UpdateSettingInput struct {
	Id    int64
	Key   *string
	Value *string
}
