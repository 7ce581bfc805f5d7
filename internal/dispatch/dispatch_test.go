package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/five82/mensa/internal/meal"
	"github.com/five82/mensa/internal/state"
)

type recorder struct {
	signals []string
	errors  []string
}

func (r *recorder) DaysChanged()  { r.signals = append(r.signals, "days") }
func (r *recorder) MealsChanged() { r.signals = append(r.signals, "meals") }
func (r *recorder) DetailReady()  { r.signals = append(r.signals, "detail") }
func (r *recorder) Error(text string) {
	r.signals = append(r.signals, "error")
	r.errors = append(r.errors, text)
}

func newTestDispatcher() (*Dispatcher, *state.Menu, *recorder) {
	menu := &state.Menu{}
	rec := &recorder{}
	return New(menu, rec, zap.NewNop()), menu, rec
}

func TestDispatch_ErrorIsExclusive(t *testing.T) {
	d, menu, rec := newTestDispatcher()
	menu.ReplaceDays([]string{"01.01"}, []string{"Mon"})
	menu.ReplaceMeals([]int{1}, []string{"A"}, []string{"1€"})

	d.Dispatch(Event{
		FieldErrorMsg:   "Unable to fetch data",
		FieldDayList:    `["09.09"]`,
		FieldMealIDs:    `[5]`,
		FieldMealNames:  `["B"]`,
		FieldMealPrices: `["2€"]`,
	})

	assert.Equal(t, []string{"error"}, rec.signals)
	assert.Equal(t, []string{"Unable to fetch data"}, rec.errors)
	snap := menu.Snapshot()
	require.Len(t, snap.Days, 1)
	assert.Equal(t, "01.01", snap.Days[0].Date)
	require.Len(t, snap.Meals, 1)
	assert.Equal(t, 1, snap.Meals[0].ID)
	assert.Equal(t, "Unable to fetch data", snap.LastError)
}

func TestDispatch_OnlyErrorLeavesListsUnchanged(t *testing.T) {
	d, menu, rec := newTestDispatcher()
	menu.ReplaceDays([]string{"01.01"}, nil)
	before := menu.Snapshot()

	d.Dispatch(Event{FieldErrorMsg: "boom"})

	after := menu.Snapshot()
	assert.Equal(t, before.Days, after.Days)
	assert.Equal(t, before.Meals, after.Meals)
	assert.Equal(t, []string{"boom"}, rec.errors)
	assert.Len(t, rec.signals, 1)
}

func TestDispatch_DayList(t *testing.T) {
	d, menu, rec := newTestDispatcher()

	d.Dispatch(Event{
		FieldDayList:     `["01.01.2025","02.01.2025"]`,
		FieldWeekdayList: `["Wed","Thu","Fri"]`,
	})

	snap := menu.Snapshot()
	assert.Equal(t, []state.DayEntry{
		{Date: "01.01.2025", Weekday: "Wed"},
		{Date: "02.01.2025", Weekday: "Thu"},
	}, snap.Days)
	assert.Equal(t, []string{"days"}, rec.signals)
}

func TestDispatch_DayListWithoutWeekdays(t *testing.T) {
	d, menu, _ := newTestDispatcher()
	d.Dispatch(Event{FieldDayList: `["01.01"]`})

	snap := menu.Snapshot()
	require.Len(t, snap.Days, 1)
	assert.Equal(t, "", snap.Days[0].Weekday)
}

func TestDispatch_DayListCapped(t *testing.T) {
	d, menu, _ := newTestDispatcher()
	d.Dispatch(Event{FieldDayList: `["1","2","3","4","5","6","7","8","9","10","11","12"]`})
	assert.Len(t, menu.Snapshot().Days, state.MaxDays)
}

func TestDispatch_MealListSignalsOnce(t *testing.T) {
	d, menu, rec := newTestDispatcher()

	d.Dispatch(Event{
		FieldMealIDs:    `[11,12,13]`,
		FieldMealNames:  `["Vegan: Curry","Steak"]`,
		FieldMealPrices: `["2.50€","4.10€","1.00€"]`,
	})

	snap := menu.Snapshot()
	require.Len(t, snap.Meals, 2)
	assert.Equal(t, "Curry", snap.Meals[0].Name)
	assert.Equal(t, meal.DietVegan, snap.Meals[0].Diet)
	assert.Equal(t, 12, snap.Meals[1].ID)
	assert.Equal(t, []string{"meals", "days"}, rec.signals)
}

func TestDispatch_IncompleteMealFieldsIgnored(t *testing.T) {
	d, menu, rec := newTestDispatcher()
	menu.ReplaceMeals([]int{1}, []string{"A"}, []string{"1€"})

	d.Dispatch(Event{FieldMealIDs: `[2]`, FieldMealNames: `["B"]`})

	snap := menu.Snapshot()
	require.Len(t, snap.Meals, 1)
	assert.Equal(t, 1, snap.Meals[0].ID)
	assert.Equal(t, []string{"days"}, rec.signals)
}

func TestDispatch_Detail(t *testing.T) {
	d, menu, rec := newTestDispatcher()

	d.Dispatch(Event{
		FieldMealName:  "Curry",
		FieldMealPrice: "2.50€",
		FieldMealNotes: "Gluten, Soja",
	})

	snap := menu.Snapshot()
	assert.True(t, snap.HasDetail)
	assert.Equal(t, state.MealDetail{Name: "Curry", Price: "2.50€", Notes: "Gluten, Soja"}, snap.Detail)
	assert.Equal(t, []string{"detail", "days"}, rec.signals)
}

func TestDispatch_DetailNeedsAllFields(t *testing.T) {
	d, menu, rec := newTestDispatcher()
	d.Dispatch(Event{FieldMealName: "Curry", FieldMealPrice: "2.50€"})

	assert.False(t, menu.Snapshot().HasDetail)
	assert.Equal(t, []string{"days"}, rec.signals)
}

func TestDispatch_ChannelsAreIndependent(t *testing.T) {
	d, menu, rec := newTestDispatcher()

	d.Dispatch(Event{
		FieldDayList:    `["01.01"]`,
		FieldMealIDs:    `[1]`,
		FieldMealNames:  `["A"]`,
		FieldMealPrices: `["1€"]`,
		FieldMealName:   "A",
		FieldMealPrice:  "1€",
		FieldMealNotes:  "",
	})

	snap := menu.Snapshot()
	assert.Len(t, snap.Days, 1)
	assert.Len(t, snap.Meals, 1)
	assert.True(t, snap.HasDetail)
	assert.Equal(t, []string{"detail", "meals", "days"}, rec.signals)
}

func TestDispatch_EmptyEventStillRedrawsDays(t *testing.T) {
	d, _, rec := newTestDispatcher()
	d.Dispatch(Event{})
	assert.Equal(t, []string{"days"}, rec.signals)
}

func TestDispatch_MalformedPayloadsDegrade(t *testing.T) {
	d, menu, _ := newTestDispatcher()
	d.Dispatch(Event{
		FieldDayList:    `["01.01","02.`,
		FieldMealIDs:    `[1,,x`,
		FieldMealNames:  `garbage`,
		FieldMealPrices: `["1€"]`,
	})

	snap := menu.Snapshot()
	assert.Len(t, snap.Days, 1)
	assert.Empty(t, snap.Meals)
}

func TestNew_NilRendererAndLogger(t *testing.T) {
	menu := &state.Menu{}
	d := New(menu, nil, nil)
	assert.NotPanics(t, func() {
		d.Dispatch(Event{FieldErrorMsg: "x"})
		d.Dispatch(Event{FieldDayList: `["a"]`})
	})
}
