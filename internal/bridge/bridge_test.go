package bridge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/mensa/internal/dispatch"
	"github.com/five82/mensa/internal/openmensa"
	"github.com/five82/mensa/internal/state"
)

type fakeFetcher struct {
	days       []openmensa.Day
	meals      []openmensa.Meal
	err        error
	gotDate    string
	gotCanteen int
}

func (f *fakeFetcher) FetchDays(_ context.Context, canteenID int) ([]openmensa.Day, error) {
	f.gotCanteen = canteenID
	return f.days, f.err
}

func (f *fakeFetcher) FetchMeals(_ context.Context, canteenID int, date string) ([]openmensa.Meal, error) {
	f.gotCanteen = canteenID
	f.gotDate = date
	return f.meals, f.err
}

func price(v float64) *float64 { return &v }

func TestBridge_Days(t *testing.T) {
	f := &fakeFetcher{days: []openmensa.Day{
		{Date: "2025-03-03"},
		{Date: "garbage"},
		{Date: "2025-03-08", Closed: true},
	}}
	b := New(f, 42, nil)

	ev := b.Days(context.Background())
	assert.Equal(t, 42, f.gotCanteen)
	assert.Equal(t, dispatch.Event{
		dispatch.FieldDayList:     `["03.03.2025","08.03.2025"]`,
		dispatch.FieldWeekdayList: `["Mon","Sat · closed"]`,
	}, ev)
}

func TestBridge_DaysErrors(t *testing.T) {
	ev := New(&fakeFetcher{}, 0, nil).Days(context.Background())
	assert.Equal(t, dispatch.Event{dispatch.FieldErrorMsg: MsgNoCanteen}, ev)

	ev = New(&fakeFetcher{err: errors.New("boom")}, 1, nil).Days(context.Background())
	assert.Equal(t, dispatch.Event{dispatch.FieldErrorMsg: MsgUnavailable}, ev)
}

func TestBridge_RequestMealsAndDetail(t *testing.T) {
	f := &fakeFetcher{meals: []openmensa.Meal{
		{ID: 10, Name: `Vegan: Curry "Madras"`, Category: "Hauptgericht",
			Prices: openmensa.Prices{Students: price(2.5)}, Notes: []string{"scharf", " ", "Sesam"}},
		{ID: 11, Name: "Käsespätzle", Notes: []string{"vegetarisch"}},
		{ID: 12, Name: "Schnitzel", Prices: openmensa.Prices{Students: price(3)}},
	}}
	b := New(f, 7, nil)

	ev := b.RequestMeals(context.Background(), "04.03.2025")
	assert.Equal(t, "2025-03-04", f.gotDate)
	assert.Equal(t, dispatch.Event{
		dispatch.FieldMealIDs:    `[10,11,12]`,
		dispatch.FieldMealNames:  `["Vegan: Curry 'Madras'","Vegetarian: Käsespätzle","Schnitzel"]`,
		dispatch.FieldMealPrices: `["2.50€","-","3.00€"]`,
	}, ev)

	ev = b.RequestDetail(context.Background(), 10)
	assert.Equal(t, dispatch.Event{
		dispatch.FieldMealName:  `Curry "Madras"`,
		dispatch.FieldMealPrice: "2.50€",
		dispatch.FieldMealNotes: "Hauptgericht, scharf, Sesam",
	}, ev)

	ev = b.RequestDetail(context.Background(), 99)
	assert.Equal(t, MsgUnavailable, ev[dispatch.FieldErrorMsg])
}

func TestBridge_RequestMealsErrors(t *testing.T) {
	b := New(&fakeFetcher{}, 7, nil)
	ev := b.RequestMeals(context.Background(), "2025-03-04")
	assert.Equal(t, MsgUnavailable, ev[dispatch.FieldErrorMsg])

	b = New(&fakeFetcher{err: openmensa.ErrNotFound}, 7, nil)
	ev = b.RequestMeals(context.Background(), "04.03.2025")
	assert.Equal(t, MsgNoMenu, ev[dispatch.FieldErrorMsg])

	b = New(&fakeFetcher{err: errors.New("offline")}, 7, nil)
	ev = b.RequestMeals(context.Background(), "04.03.2025")
	assert.Equal(t, MsgUnavailable, ev[dispatch.FieldErrorMsg])

	ev = New(&fakeFetcher{}, 0, nil).RequestMeals(context.Background(), "04.03.2025")
	assert.Equal(t, MsgNoCanteen, ev[dispatch.FieldErrorMsg])
}

func TestBridge_SetCanteenForgetsMeals(t *testing.T) {
	f := &fakeFetcher{meals: []openmensa.Meal{{ID: 1, Name: "Suppe"}}}
	b := New(f, 1, nil)
	b.RequestMeals(context.Background(), "04.03.2025")

	b.SetCanteen(2)
	assert.Equal(t, 2, b.Canteen())
	ev := b.RequestDetail(context.Background(), 1)
	assert.Contains(t, ev, dispatch.FieldErrorMsg)
}

func TestBridge_EventsRoundTripThroughDispatcher(t *testing.T) {
	f := &fakeFetcher{
		days: []openmensa.Day{{Date: "2025-03-03"}, {Date: "2025-03-04"}},
		meals: []openmensa.Meal{
			{ID: 5, Name: "Vegetarisch: Pasta", Prices: openmensa.Prices{Students: price(1.9)}},
		},
	}
	b := New(f, 3, nil)
	menu := &state.Menu{}
	d := dispatch.New(menu, nil, nil)

	d.Dispatch(b.Days(context.Background()))
	d.Dispatch(b.RequestMeals(context.Background(), "03.03.2025"))

	snap := menu.Snapshot()
	require.Len(t, snap.Days, 2)
	assert.Equal(t, state.DayEntry{Date: "03.03.2025", Weekday: "Mon"}, snap.Days[0])
	require.Len(t, snap.Meals, 1)
	assert.Equal(t, 5, snap.Meals[0].ID)
	assert.Equal(t, "Pasta", snap.Meals[0].Name)
	assert.Equal(t, "1.90€", snap.Meals[0].Price)
}
