package services

import (
	"testing"

	"messmet_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAudiencesFor(t *testing.T) {
	hosteller := &models.User{HostelStatus: models.HostelStatusHosteller}
	dayScholar := &models.User{HostelStatus: models.HostelStatusNonHosteller}

	tests := []struct {
		name         string
		user         *models.User
		hasActiveSub bool
		want         []models.TargetAudience
	}{
		{
			"аноним видит только all",
			nil, false,
			[]models.TargetAudience{models.TargetAllUsers},
		},
		{
			"аноним с подпиской невозможен, но подписка не добавляется",
			nil, true,
			[]models.TargetAudience{models.TargetAllUsers},
		},
		{
			"хостелер без подписки",
			hosteller, false,
			[]models.TargetAudience{models.TargetAllUsers, models.TargetHostellers},
		},
		{
			"хостелер с подпиской",
			hosteller, true,
			[]models.TargetAudience{models.TargetAllUsers, models.TargetHostellers, models.TargetActiveSubscribers},
		},
		{
			"приходящий студент с подпиской",
			dayScholar, true,
			[]models.TargetAudience{models.TargetAllUsers, models.TargetNonHostellers, models.TargetActiveSubscribers},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AudiencesFor(tt.user, tt.hasActiveSub))
		})
	}
}
