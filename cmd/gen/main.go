package main

import (
	"beacon/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.EventModel{},
		model.EventParticipantModel{},
		model.CategoryModel{},
		model.NotificationPreferenceModel{},
		model.PreferenceCategoryModel{},
		model.EventNotificationModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
