package services

import (
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/imagecheck/qcreview/internal/domain"
	portsmocks "github.com/imagecheck/qcreview/internal/ports/mocks"
)

func TestSettingsService_LoadDefaults(t *testing.T) {
	repo := portsmocks.NewMockSettingsRepository(t)
	repo.EXPECT().LoadAllSettings(mock.Anything).Return(map[string]string{}, nil).Once()

	var saved string
	repo.EXPECT().SaveSetting(mock.Anything, SettingColorSettings, mock.Anything).
		Run(func(_ context.Context, _ string, value string) { saved = value }).
		Return(nil).Once()

	settings, err := NewSettingsService(repo).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, DefaultAppSettings(), settings)
	assert.Nil(t, settings.CustomCards)

	var colors domain.ColorSettings
	require.NoError(t, json.Unmarshal([]byte(saved), &colors))
	assert.Equal(t, domain.DefaultColorSettings(), colors)
}

func TestSettingsService_LoadIsolatesParseFailures(t *testing.T) {
	repo := portsmocks.NewMockSettingsRepository(t)
	repo.EXPECT().LoadAllSettings(mock.Anything).Return(map[string]string{
		SettingColorSettings:       `{"primaryColor":"#000000"}`,
		SettingImageViewerHeight:   `"tall"`,
		SettingQCNames:             `["Alice","Bob"]`,
		SettingQCObservations:      `[{"id":"dust","label":"Dust","shortcut":"1"}]`,
		SettingNextActionOptions:   `[]`,
		SettingRetouchObservations: `not json`,
		"someFutureSetting":        `true`,
	}, nil).Once()

	settings, err := NewSettingsService(repo).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "#000000", settings.ColorSettings.PrimaryColor)
	assert.Equal(t, DefaultImageViewerHeight, settings.ImageViewerHeight)
	assert.Equal(t, []string{"Alice", "Bob"}, settings.QCNames)
	assert.Equal(t, []domain.Option{{ID: "dust", Label: "Dust", Shortcut: "1"}}, settings.QCObservations)
	assert.Equal(t, domain.DefaultNextActions(), settings.NextActionOptions)
	assert.Equal(t, domain.DefaultObservations(), settings.RetouchObservations)
}

func TestSettingsService_LoadRepositoryError(t *testing.T) {
	repo := portsmocks.NewMockSettingsRepository(t)
	repo.EXPECT().LoadAllSettings(mock.Anything).Return(nil, errors.New("disk I/O error")).Once()

	settings, err := NewSettingsService(repo).Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load app settings")
	assert.Equal(t, DefaultAppSettings(), settings)
}

func TestSettingsService_CustomCardsRoundTrip(t *testing.T) {
	card := domain.NewCustomCard("Angle", domain.CardSelect, []string{"Front", "Rear"}, true)

	repo := portsmocks.NewMockSettingsRepository(t)
	stored := map[string]string{SettingColorSettings: `{}`}
	repo.EXPECT().SaveSetting(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, key, value string) error {
			stored[key] = value
			return nil
		})
	repo.EXPECT().LoadAllSettings(mock.Anything).RunAndReturn(func(context.Context) (map[string]string, error) {
		return stored, nil
	})

	svc := NewSettingsService(repo)
	require.NoError(t, svc.SaveCustomCards(context.Background(), []domain.CustomCard{card}))

	settings, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.CustomCard{card}, settings.CustomCards)
}

func TestSettingsService_SaveCustomCards(t *testing.T) {
	t.Run("empty list is stored as array", func(t *testing.T) {
		repo := portsmocks.NewMockSettingsRepository(t)
		repo.EXPECT().SaveSetting(mock.Anything, SettingCustomCards, "[]").Return(nil).Once()

		require.NoError(t, NewSettingsService(repo).SaveCustomCards(context.Background(), nil))
	})

	t.Run("invalid card is rejected before saving", func(t *testing.T) {
		repo := portsmocks.NewMockSettingsRepository(t)
		card := domain.NewCustomCard("", domain.CardSelect, nil, false)

		err := NewSettingsService(repo).SaveCustomCards(context.Background(), []domain.CustomCard{card})

		assert.ErrorIs(t, err, domain.ErrInvalidCard)
	})
}

func TestSettingsService_SaveAllJoinsErrors(t *testing.T) {
	repo := portsmocks.NewMockSettingsRepository(t)
	repo.EXPECT().SaveSetting(mock.Anything, SettingWallpaper, mock.Anything).Return(errors.New("readonly database")).Once()
	repo.EXPECT().SaveSetting(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(11)

	err := NewSettingsService(repo).SaveAll(context.Background(), DefaultAppSettings())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save setting wallpaper")
}

func TestAppSettings_ObservationOptions(t *testing.T) {
	settings := DefaultAppSettings()
	settings.RetouchObservations = []domain.Option{{ID: "x", Label: "X"}}

	options := settings.ObservationOptions()

	assert.Equal(t, domain.DefaultObservations(), options.QC)
	assert.Equal(t, []domain.Option{{ID: "x", Label: "X"}}, options.Retouch)
}

func TestSettingsService_SaveRaw(t *testing.T) {
	repo := portsmocks.NewMockSettingsRepository(t)
	repo.EXPECT().SaveSetting(mock.Anything, SettingQCNames, `["Alice","Bob"]`).Return(nil).Once()
	svc := NewSettingsService(repo)

	require.NoError(t, svc.SaveRaw(context.Background(), SettingQCNames, `["Alice","Bob"]`))

	err := svc.SaveRaw(context.Background(), SettingQCNames, `"Alice"`)
	assert.ErrorContains(t, err, "invalid value for qcNames")

	err = svc.SaveRaw(context.Background(), "theme", `{}`)
	assert.ErrorContains(t, err, "unknown setting theme")
}

func TestAppSettingKeys(t *testing.T) {
	keys := AppSettingKeys()

	assert.Len(t, keys, 12)
	assert.True(t, IsAppSettingKey(SettingQCObservations))
	assert.False(t, IsAppSettingKey("keys"))
	assert.IsIncreasing(t, keys)
}
