package bridge

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/five82/mensa/internal/dispatch"
	"github.com/five82/mensa/internal/meal"
	"github.com/five82/mensa/internal/openmensa"
)

// Messages shown on the error screen.
const (
	MsgNoCanteen   = "No canteen ID: set canteen_id in the config file"
	MsgUnavailable = "Unable to fetch data, please try again later"
	MsgNoMenu      = "No menu published for this day"
)

const (
	labelLayout = "02.01.2006"
	noPrice     = "-"
)

// Bridge turns OpenMensa responses into update events and serves the meal
// list and meal detail requests coming back from the UI.
type Bridge struct {
	fetcher openmensa.Fetcher
	logger  *zap.Logger

	mu        sync.Mutex
	canteenID int
	meals     map[int]openmensa.Meal
}

// New builds a Bridge for canteenID. A canteenID <= 0 means "not configured".
func New(fetcher openmensa.Fetcher, canteenID int, logger *zap.Logger) *Bridge {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bridge{
		fetcher:   fetcher,
		logger:    logger,
		canteenID: canteenID,
		meals:     make(map[int]openmensa.Meal),
	}
}

// SetCanteen switches to another canteen and forgets remembered meals.
func (b *Bridge) SetCanteen(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.canteenID == id {
		return
	}
	b.canteenID = id
	b.meals = make(map[int]openmensa.Meal)
}

// Canteen returns the configured canteen id.
func (b *Bridge) Canteen() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.canteenID
}

// Days fetches the day list and encodes it as a day_list/weekday_list event.
func (b *Bridge) Days(ctx context.Context) dispatch.Event {
	id := b.Canteen()
	if id <= 0 {
		return errorEvent(MsgNoCanteen)
	}

	days, err := b.fetcher.FetchDays(ctx, id)
	if err != nil {
		b.logger.Warn("fetch days failed", zap.Int("canteen", id), zap.Error(err))
		return errorEvent(MsgUnavailable)
	}

	labels := make([]string, 0, len(days))
	weekdays := make([]string, 0, len(days))
	for _, d := range days {
		t, ok := d.ParsedDate()
		if !ok {
			b.logger.Debug("skipping day with bad date", zap.String("date", d.Date))
			continue
		}
		labels = append(labels, t.Format(labelLayout))
		weekday := t.Format("Mon")
		if d.Closed {
			weekday += " · closed"
		}
		weekdays = append(weekdays, weekday)
	}
	b.logger.Debug("days fetched", zap.Int("canteen", id), zap.Int("days", len(labels)))

	return dispatch.Event{
		dispatch.FieldDayList:     EncodeStrings(labels),
		dispatch.FieldWeekdayList: EncodeStrings(weekdays),
	}
}

// RequestMeals fetches the meals for a DD.MM.YYYY day label and encodes them
// as a meal list event.
func (b *Bridge) RequestMeals(ctx context.Context, dateLabel string) dispatch.Event {
	id := b.Canteen()
	if id <= 0 {
		return errorEvent(MsgNoCanteen)
	}
	date, err := apiDate(dateLabel)
	if err != nil {
		b.logger.Warn("bad day label", zap.String("label", dateLabel), zap.Error(err))
		return errorEvent(MsgUnavailable)
	}

	meals, err := b.fetcher.FetchMeals(ctx, id, date)
	if errors.Is(err, openmensa.ErrNotFound) {
		return errorEvent(MsgNoMenu)
	}
	if err != nil {
		b.logger.Warn("fetch meals failed", zap.Int("canteen", id), zap.String("date", date), zap.Error(err))
		return errorEvent(MsgUnavailable)
	}

	ids := make([]int, 0, len(meals))
	names := make([]string, 0, len(meals))
	prices := make([]string, 0, len(meals))
	remembered := make(map[int]openmensa.Meal, len(meals))
	for _, m := range meals {
		ids = append(ids, m.ID)
		names = append(names, listName(m))
		prices = append(prices, formatPrice(m.Prices.Students))
		remembered[m.ID] = m
	}

	b.mu.Lock()
	b.meals = remembered
	b.mu.Unlock()
	b.logger.Debug("meals fetched", zap.String("date", date), zap.Int("meals", len(ids)))

	return dispatch.Event{
		dispatch.FieldMealIDs:    EncodeInts(ids),
		dispatch.FieldMealNames:  EncodeStrings(names),
		dispatch.FieldMealPrices: EncodeStrings(prices),
	}
}

// RequestDetail encodes the detail of a meal from the last meal list.
func (b *Bridge) RequestDetail(_ context.Context, id int) dispatch.Event {
	b.mu.Lock()
	m, ok := b.meals[id]
	b.mu.Unlock()
	if !ok {
		b.logger.Warn("detail for unknown meal", zap.Int("meal", id))
		return errorEvent(MsgUnavailable)
	}

	name, _ := meal.Classify(m.Name)
	return dispatch.Event{
		dispatch.FieldMealName:  name,
		dispatch.FieldMealPrice: formatPrice(m.Prices.Students),
		dispatch.FieldMealNotes: notes(m),
	}
}

func errorEvent(msg string) dispatch.Event {
	return dispatch.Event{dispatch.FieldErrorMsg: msg}
}

// apiDate converts a DD.MM.YYYY label to YYYY-MM-DD.
func apiDate(label string) (string, error) {
	t, err := time.Parse(labelLayout, strings.TrimSpace(label))
	if err != nil {
		return "", fmt.Errorf("parse day label: %w", err)
	}
	return openmensa.FormatDate(t), nil
}

func formatPrice(p *float64) string {
	if p == nil {
		return noPrice
	}
	return fmt.Sprintf("%.2f€", *p)
}

// listName returns the name sent in the meal list. When only the notes carry
// the diet, a marker prefix is added so the receiving side tags the meal; the
// prefix is stripped again on arrival.
func listName(m openmensa.Meal) string {
	if _, diet := meal.Classify(m.Name); diet != meal.DietNone {
		return m.Name
	}
	_, diet := meal.Classify(strings.Join(m.Notes, ", "))
	switch diet {
	case meal.DietVegan:
		return "Vegan: " + m.Name
	case meal.DietVegetarian:
		return "Vegetarian: " + m.Name
	}
	return m.Name
}

func notes(m openmensa.Meal) string {
	parts := make([]string, 0, len(m.Notes)+1)
	if c := strings.TrimSpace(m.Category); c != "" {
		parts = append(parts, c)
	}
	for _, n := range m.Notes {
		if n = strings.TrimSpace(n); n != "" {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, ", ")
}
