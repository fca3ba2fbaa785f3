package agenda_test

import (
	"strings"
	"testing"
	"time"

	"ker-agenda/internal/agenda"
	"ker-agenda/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembler_TruncateTitle(t *testing.T) {
	a := agenda.NewAssembler(0)

	assert.Equal(t, "Trail...", a.TruncateTitle("Trail"))
	assert.Equal(t, "...", a.TruncateTitle(""))
	long := "Festival des arts de la rue de Lannion"
	assert.Equal(t, "Festival des arts de la rue de...", a.TruncateTitle(long))
	// 以字元而非位元組計算
	accents := strings.Repeat("é", 40)
	assert.Equal(t, strings.Repeat("é", 30)+"...", a.TruncateTitle(accents))
	assert.Equal(t, "Fest...", agenda.NewAssembler(4).TruncateTitle("Festival"))
}

func TestAssembler_CardView(t *testing.T) {
	a := agenda.NewAssembler(agenda.DefaultTitleLimit)
	base := model.EventRecord{
		Name:          "Trail des Korrigans",
		OrganizerName: "Club Athlé",
		Category:      "Sport",
		Date:          date(2024, time.June, 10),
		PostalCode:    "22300",
		Description:   "Boucles de 10 et 20 km",
	}

	t.Run("without media", func(t *testing.T) {
		card, err := a.CardView(base)

		require.NoError(t, err)
		assert.Equal(t, "Trail des Korrigans...", card.Title)
		tooltip := string(card.Tooltip)
		for _, part := range []string{"Trail des Korrigans", "Club Athlé", "22300", "Sport", "Boucles de 10 et 20 km"} {
			assert.Contains(t, tooltip, part)
		}
		assert.NotContains(t, tooltip, "Média(s)")
		assert.Equal(t, base, card.Event)
	})

	t.Run("with media", func(t *testing.T) {
		r := base
		r.Media = strPtr("photo.jpg")

		card, err := a.CardView(r)

		require.NoError(t, err)
		assert.Contains(t, string(card.Tooltip), "<strong>Média(s):</strong> photo.jpg")
	})

	t.Run("untrusted fields are escaped", func(t *testing.T) {
		r := base
		r.Name = `<img src=x onerror="alert(1)">`
		r.Description = "<script>alert('x')</script>"
		r.Media = strPtr(`"><b>`)

		card, err := a.CardView(r)

		require.NoError(t, err)
		tooltip := string(card.Tooltip)
		assert.NotContains(t, tooltip, "<script>")
		assert.NotContains(t, tooltip, "<img")
		assert.NotContains(t, tooltip, "<b>")
		assert.Contains(t, tooltip, "&lt;script&gt;")
	})
}

func TestAssembler_UpcomingView(t *testing.T) {
	a := agenda.NewAssembler(agenda.DefaultTitleLimit)
	r := model.EventRecord{
		Name:          "Une très longue exposition de peintures locales",
		OrganizerName: "Galerie & Co",
		Category:      "Culture",
		Date:          date(2024, time.June, 20),
		PostalCode:    "22000",
		Description:   "<script>x</script>",
	}

	card, err := a.UpcomingView(r)

	require.NoError(t, err)
	html := string(card.HTML)
	assert.Contains(t, html, "Une très longue exposition de peintures locales")
	assert.Contains(t, html, "22000 | 🏢 Galerie &amp; Co")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "Média(s)")

	r.Media = strPtr("affiche.pdf")
	card, err = a.UpcomingView(r)
	require.NoError(t, err)
	assert.Contains(t, string(card.HTML), "<div><strong>Média(s):</strong> affiche.pdf</div>")
}
