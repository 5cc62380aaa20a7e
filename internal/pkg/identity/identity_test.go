//go:build unit

package identity_test

import (
	"math/rand/v2"
	"regexp"
	"testing"
	"unicode/utf8"

	"gym-reserve/internal/pkg/identity"

	"github.com/stretchr/testify/assert"
)

var mobilePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

type stubGenerator struct{}

func (stubGenerator) Name() string  { return "生成名" }
func (stubGenerator) Phone() string { return "13900000000" }

func TestFakerGenerator(t *testing.T) {
	gen := identity.NewFakerGenerator(rand.New(rand.NewPCG(1, 2)))

	t.Run("phone is an 11-digit mobile number", func(t *testing.T) {
		for range 200 {
			assert.Regexp(t, mobilePattern, gen.Phone())
		}
	})

	t.Run("same seed gives the same phone sequence", func(t *testing.T) {
		a := identity.NewFakerGenerator(rand.New(rand.NewPCG(7, 7)))
		b := identity.NewFakerGenerator(rand.New(rand.NewPCG(7, 7)))
		for range 10 {
			assert.Equal(t, a.Phone(), b.Phone())
		}
	})

	t.Run("global source works without a seed", func(t *testing.T) {
		assert.Regexp(t, mobilePattern, identity.NewFakerGenerator(nil).Phone())
	})

	t.Run("name is non-empty", func(t *testing.T) {
		name := gen.Name()
		assert.NotEmpty(t, name)
		assert.True(t, utf8.ValidString(name))
	})
}

func TestFill(t *testing.T) {
	tests := []struct {
		name      string
		inName    string
		inPhone   string
		wantName  string
		wantPhone string
	}{
		{"both supplied", "张三", "13800000000", "张三", "13800000000"},
		{"blank name", "", "13800000000", "生成名", "13800000000"},
		{"whitespace phone", "张三", "  ", "张三", "13900000000"},
		{"both blank", "", "", "生成名", "13900000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, phone := identity.Fill(stubGenerator{}, tt.inName, tt.inPhone)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantPhone, phone)
		})
	}
}
