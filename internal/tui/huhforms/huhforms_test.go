package huhforms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/funil/internal/config/colors"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"ana@example.com", false},
		{"  ana@example.com  ", false},
		{"", true},
		{"ana", true},
		{"Ana <ana@example.com>", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateEmail(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSplitStages(t *testing.T) {
	assert.Equal(t, []string{"Lead", "Demo", "Fechado"}, SplitStages(" Lead, Demo,, Fechado ,"))
	assert.Nil(t, SplitStages(" , "))
}

func TestFormsBuild(t *testing.T) {
	var email, password, name, desc, stages string
	var confirm bool

	theme := CreateFunilTheme(*colors.Default())
	assert.NotNil(t, CreateLoginForm(&email, &password).WithTheme(theme))
	assert.NotNil(t, CreateFunnelForm(&name, &desc, &stages, &confirm).WithTheme(theme))
}

func TestFormKeyMap(t *testing.T) {
	km := FormKeyMap()

	assert.Equal(t, []string{"ctrl+c"}, km.Quit.Keys(), "esc is left to the board")
	assert.Contains(t, km.Text.NewLine.Keys(), "shift+enter")
	assert.False(t, km.Text.Editor.Enabled())
}
