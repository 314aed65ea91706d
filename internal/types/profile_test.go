package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		profile *Profile
		wantErr bool
	}{
		{
			name:    "valid profile",
			profile: &Profile{ID: "user-1", Experience: ExperienceMid},
			wantErr: false,
		},
		{
			name:    "missing identifier",
			profile: &Profile{Experience: ExperienceMid},
			wantErr: true,
		},
		{
			name:    "unknown experience level",
			profile: &Profile{ID: "user-1", Experience: "principal"},
			wantErr: true,
		},
		{
			name:    "nil profile",
			profile: nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantErr {
				require.Error(t, err)
				var invalid *InvalidInputError
				assert.ErrorAs(t, err, &invalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProfile_WithStrategy_DoesNotMutateOriginal(t *testing.T) {
	original := Profile{
		ID:              "user-1",
		Skills:          []string{"python", "aws"},
		TargetLocations: []string{"Remote"},
		Experience:      ExperienceMid,
	}

	tagged := original.WithStrategy(Strategy{Tier: TierUrgent, Name: "fast-track", MonthsRemaining: -1})

	require.NotNil(t, tagged.Strategy)
	assert.Equal(t, TierUrgent, tagged.Strategy.Tier)
	assert.Nil(t, original.Strategy, "original profile must stay untagged")

	// The copy owns its own slices
	tagged.Skills[0] = "rust"
	assert.Equal(t, "python", original.Skills[0])
}

func TestExperienceLevel_Distance(t *testing.T) {
	assert.Equal(t, 0, ExperienceMid.Distance(ExperienceMid))
	assert.Equal(t, 1, ExperienceEntry.Distance(ExperienceMid))
	assert.Equal(t, 2, ExperienceEntry.Distance(ExperienceSenior))
	assert.Equal(t, 2, ExperienceSenior.Distance(ExperienceEntry))
	assert.Equal(t, 0, ExperienceLevel("unknown").Distance(ExperienceMid), "unknown levels are treated as mid")
}
