package dispatch

import (
	"go.uber.org/zap"

	"github.com/five82/mensa/internal/scan"
	"github.com/five82/mensa/internal/state"
)

// Field names recognized in an update event.
const (
	FieldErrorMsg    = "error_msg"
	FieldDayList     = "day_list"
	FieldWeekdayList = "weekday_list"
	FieldMealIDs     = "meal_ids"
	FieldMealNames   = "meal_names"
	FieldMealPrices  = "meal_prices"
	FieldMealName    = "meal_name"
	FieldMealPrice   = "meal_price"
	FieldMealNotes   = "meal_notes"
)

// Event is one decoded inbound update: field name to payload.
type Event map[string]string

// Renderer receives state-changed signals. Implementations read the menu
// themselves; the signals carry no data beyond the error text.
type Renderer interface {
	DaysChanged()
	MealsChanged()
	DetailReady()
	Error(text string)
}

// Dispatcher applies update events to a menu.
type Dispatcher struct {
	menu     *state.Menu
	renderer Renderer
	logger   *zap.Logger
}

// New builds a Dispatcher. A nil renderer or logger is replaced by a no-op.
func New(menu *state.Menu, renderer Renderer, logger *zap.Logger) *Dispatcher {
	if renderer == nil {
		renderer = nopRenderer{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{menu: menu, renderer: renderer, logger: logger}
}

// Dispatch processes one event to completion.
//
// An error field short-circuits everything else. Otherwise the detail, day
// list and meal list channels are evaluated independently, and the renderer
// is always told to redraw the day list at the end.
func (d *Dispatcher) Dispatch(ev Event) {
	if msg, ok := ev[FieldErrorMsg]; ok {
		d.logger.Warn("upstream error", zap.String("error", msg))
		d.menu.SetError(msg)
		d.renderer.Error(msg)
		return
	}

	if name, price, notes, ok := ev.detail(); ok {
		d.menu.SetDetail(name, price, notes)
		d.logger.Debug("detail stored", zap.String("name", name))
		d.renderer.DetailReady()
	}

	if dayList, ok := ev[FieldDayList]; ok {
		dates := scan.Strings(dayList, state.MaxDays)
		var weekdays []string
		if weekdayList, ok := ev[FieldWeekdayList]; ok {
			weekdays = scan.Strings(weekdayList, len(dates))
		}
		d.menu.ReplaceDays(dates, weekdays)
		d.logger.Debug("day list replaced", zap.Int("days", len(dates)), zap.Int("weekdays", len(weekdays)))
	}

	if ids, names, prices, ok := ev.meals(); ok {
		idValues := scan.Integers(ids, state.MaxMeals)
		nameValues := scan.Strings(names, state.MaxMeals)
		priceValues := scan.Strings(prices, state.MaxMeals)
		d.menu.ReplaceMeals(idValues, nameValues, priceValues)
		d.logger.Debug("meal list replaced",
			zap.Int("ids", len(idValues)),
			zap.Int("names", len(nameValues)),
			zap.Int("prices", len(priceValues)))
		d.renderer.MealsChanged()
	}

	d.renderer.DaysChanged()
}

func (ev Event) detail() (name, price, notes string, ok bool) {
	name, hasName := ev[FieldMealName]
	price, hasPrice := ev[FieldMealPrice]
	notes, hasNotes := ev[FieldMealNotes]
	return name, price, notes, hasName && hasPrice && hasNotes
}

func (ev Event) meals() (ids, names, prices string, ok bool) {
	ids, hasIDs := ev[FieldMealIDs]
	names, hasNames := ev[FieldMealNames]
	prices, hasPrices := ev[FieldMealPrices]
	return ids, names, prices, hasIDs && hasNames && hasPrices
}

type nopRenderer struct{}

func (nopRenderer) DaysChanged()  {}
func (nopRenderer) MealsChanged() {}
func (nopRenderer) DetailReady()  {}
func (nopRenderer) Error(string)  {}
