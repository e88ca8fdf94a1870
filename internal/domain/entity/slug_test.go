package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Exam Adda!", "examadda"},
		{"exam-adda", "examadda"},
		{"EXAMADDA", "examadda"},
		{"  Sunrise_Academy 2024 ", "sunriseacademy2024"},
		{"Café Étude", "caftude"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSlug(tt.in))
		})
	}
}

func TestNormalizeSlug_Idempotent(t *testing.T) {
	inputs := []string{"Exam Adda!", "a-b_c d", "ÅngströmLab", "123 Go!", ""}
	for _, in := range inputs {
		once := NormalizeSlug(in)
		assert.Equal(t, once, NormalizeSlug(once), "input %q", in)
	}
}

func TestInstitute_CanonicalSlug(t *testing.T) {
	slug := "Exam-Adda"
	withSlug := &Institute{Name: "Something Else", Slug: &slug}
	assert.Equal(t, "examadda", withSlug.CanonicalSlug())

	withoutSlug := &Institute{Name: "Exam Adda"}
	assert.Equal(t, "examadda", withoutSlug.CanonicalSlug())

	empty := ""
	emptySlug := &Institute{Name: "Exam Adda", Slug: &empty}
	assert.Equal(t, "examadda", emptySlug.CanonicalSlug())
}

func TestTenantScope_Matches(t *testing.T) {
	scope := &TenantScope{InstituteSlug: "examadda"}

	assert.True(t, scope.Matches("Exam-Adda"))
	assert.True(t, scope.Matches("examadda"))
	assert.False(t, scope.Matches("other"))
	assert.False(t, scope.Matches("!!!"))

	var nilScope *TenantScope
	assert.False(t, nilScope.Matches("examadda"))
}

func TestInstituteDetailsPatch_Apply(t *testing.T) {
	logo := "https://cdn.test/logo.png"
	show := true
	oldPhone := "1234567890"
	inst := &Institute{Phone: &oldPhone}

	patch := InstituteDetailsPatch{LogoURL: &logo, ShowInfoOnLogin: &show}
	assert.False(t, patch.IsEmpty())
	patch.Apply(inst)

	assert.Equal(t, &logo, inst.LogoURL)
	assert.True(t, inst.ShowInfoOnLogin)
	assert.Equal(t, &oldPhone, inst.Phone)
	assert.True(t, InstituteDetailsPatch{}.IsEmpty())
}
