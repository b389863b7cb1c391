package listing

import (
	"testing"

	"immobilier-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

func typePtr(t models.PropertyType) *models.PropertyType { return &t }

func listingPtr(l models.ListingType) *models.ListingType { return &l }

func seedSearchData(t *testing.T) {
	t.Helper()
	admin := seedAdmin(t)

	seed := func(title, location, status string, price, area float64, rooms int, ptype models.PropertyType, ltype models.ListingType) {
		in := sampleInput(admin.ID)
		in.Title = title
		in.Location = location
		in.Status = status
		in.Price = price
		in.Area = area
		in.Rooms = rooms
		in.Type = ptype
		in.ListingType = ltype
		_, err := CreateProperty(in, nil)
		require.NoError(t, err)
	}

	seed("Villa with pool", "Casablanca", models.StatusActive, 100000, 150, 4, models.PropertyTypeHouse, models.ListingTypeSale)
	seed("City apartment", "Rabat", models.StatusActive, 150000, 80, 2, models.PropertyTypeHouse, models.ListingTypeRent)
	seed("Building land", "Marrakech", models.StatusActive, 200000, 500, 0, models.PropertyTypeLand, models.ListingTypeSale)
	seed("Sold farmhouse", "Casablanca", "SOLD", 120000, 200, 6, models.PropertyTypeHouse, models.ListingTypeSale)
}

func titles(properties []models.Property) []string {
	out := make([]string, 0, len(properties))
	for _, p := range properties {
		out = append(out, p.Title)
	}
	return out
}

func TestSearchEmptyCriteriaReturnsOnlyActive(t *testing.T) {
	setupTestDB(t)
	seedSearchData(t)

	results, err := SearchProperties(SearchCriteria{})
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"Villa with pool", "City apartment", "Building land"},
		titles(results))
}

func TestSearchPriceBoundsAreInclusive(t *testing.T) {
	setupTestDB(t)
	seedSearchData(t)

	results, err := SearchProperties(SearchCriteria{
		MinPrice: floatPtr(100000),
		MaxPrice: floatPtr(200000),
	})
	require.NoError(t, err)
	// Boundary prices 100000 and 200000 are both included; the SOLD
	// farmhouse at 120000 is not, search only sees ACTIVE listings.
	assert.ElementsMatch(t,
		[]string{"Villa with pool", "City apartment", "Building land"},
		titles(results))

	results, err = SearchProperties(SearchCriteria{MinPrice: floatPtr(100001)})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"City apartment", "Building land"}, titles(results))
}

func TestSearchSubstringMatches(t *testing.T) {
	setupTestDB(t)
	seedSearchData(t)

	results, err := SearchProperties(SearchCriteria{Location: strPtr("sablanc")})
	require.NoError(t, err)
	assert.Equal(t, []string{"Villa with pool"}, titles(results))

	results, err = SearchProperties(SearchCriteria{Title: strPtr("apartment")})
	require.NoError(t, err)
	assert.Equal(t, []string{"City apartment"}, titles(results))
}

func TestSearchRoomsRange(t *testing.T) {
	setupTestDB(t)
	seedSearchData(t)

	results, err := SearchProperties(SearchCriteria{
		MinRooms: intPtr(2),
		MaxRooms: intPtr(4),
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Villa with pool", "City apartment"}, titles(results))
}

func TestSearchCombinedCriteria(t *testing.T) {
	setupTestDB(t)
	seedSearchData(t)

	results, err := SearchProperties(SearchCriteria{
		Type:        typePtr(models.PropertyTypeHouse),
		ListingType: listingPtr(models.ListingTypeSale),
		MaxArea:     floatPtr(200),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Villa with pool"}, titles(results))
}

func TestSearchNoMatchReturnsEmptySlice(t *testing.T) {
	setupTestDB(t)
	seedSearchData(t)

	results, err := SearchProperties(SearchCriteria{MinPrice: floatPtr(9000000)})
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}
