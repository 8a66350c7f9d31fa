package models

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
)

func TestDummyRatingValidation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		score   int
		wantErr bool
	}{
		{name: "нижняя граница", score: 1, wantErr: false},
		{name: "середина шкалы", score: 3, wantErr: false},
		{name: "верхняя граница", score: 5, wantErr: false},
		{name: "ноль", score: 0, wantErr: true},
		{name: "выше шкалы", score: 6, wantErr: true},
		{name: "сильно выше шкалы", score: 8, wantErr: true},
		{name: "отрицательная оценка", score: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(DummyRating{Score: tt.score})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
