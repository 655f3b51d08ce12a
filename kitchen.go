package kitchen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/go-preform/orderkitchen/stringMap"
	"github.com/rs/zerolog"
)

var (
	ErrCountersDrift = errors.New("kitchen counters drifted from held dishes")
	ErrKitchenFull   = errors.New("kitchen is full")

	nopLogger = zerolog.Nop()
)

// Kitchen holds the dishes currently being prepared and keeps the prep time
// sum and elaborate dish count in step with every add and remove.
type Kitchen struct {
	dishes         IBag[Dish]
	totalPrepTime  int
	elaborateCount int
	logger         *zerolog.Logger
	tracer         ITraceableKitchen
}

func NewKitchen(capacity int) *Kitchen {
	return NewKitchenWithBag(NewArrayBag[Dish](capacity))
}

// NewKitchenWithBag adopts whatever bag already holds and derives the
// counters from it.
func NewKitchenWithBag(bag IBag[Dish]) *Kitchen {
	k := &Kitchen{
		dishes: bag,
		logger: &nopLogger,
	}
	k.Recount()
	return k
}

func (k *Kitchen) SetLogger(l *zerolog.Logger) *Kitchen {
	if l == nil {
		l = &nopLogger
	}
	k.logger = l
	return k
}

func (k *Kitchen) SetTracer(t ITraceableKitchen) *Kitchen {
	k.tracer = t
	return k
}

func (k *Kitchen) NewOrder(dish Dish) bool {
	_, span := k.startTrace("newOrder", dish)
	ok := k.newOrder(span, dish)
	k.endTrace(span, ok)
	return ok
}

func (k *Kitchen) newOrder(span ITraceSpan, dish Dish) bool {
	if k.dishes.Contains(dish) {
		k.logger.Debug().Str("dish", dish.Name).Msg("order rejected, dish already in kitchen")
		addEvent(span, "rejected", map[string]any{"reason": "duplicate"})
		return false
	}
	if !k.dishes.Add(dish) {
		k.logger.Debug().Str("dish", dish.Name).Int("size", k.dishes.CurrentSize()).Msg("order rejected, kitchen is full")
		addEvent(span, "rejected", map[string]any{"reason": "full", "size": k.dishes.CurrentSize()})
		return false
	}
	k.count(dish)
	k.logger.Debug().Str("dish", dish.Name).Str("cuisine", dish.Cuisine.String()).Int("prepTime", dish.PrepTime).Msg("order accepted")
	return true
}

// OrderAll places every dish, skipping duplicates. It stops at the first dish
// the kitchen has no room for.
func (k *Kitchen) OrderAll(dishes ...Dish) (accepted int, err error) {
	for _, d := range dishes {
		if k.NewOrder(d) {
			accepted++
			continue
		}
		if !k.dishes.Contains(d) {
			return accepted, fmt.Errorf("%w: cannot take %q after %d dishes", ErrKitchenFull, d.Name, k.dishes.CurrentSize())
		}
	}
	return accepted, nil
}

func (k *Kitchen) ServeDish(dish Dish) bool {
	_, span := k.startTrace("serveDish", dish)
	ok := k.serveDish(span, dish)
	k.endTrace(span, ok)
	return ok
}

func (k *Kitchen) serveDish(span ITraceSpan, dish Dish) bool {
	if !k.dishes.Contains(dish) {
		addEvent(span, "rejected", map[string]any{"reason": "missing"})
		return false
	}
	if !k.dishes.Remove(dish) {
		return false
	}
	k.discount(dish)
	k.logger.Debug().Str("dish", dish.Name).Str("cuisine", dish.Cuisine.String()).Msg("dish served")
	return true
}

func (k *Kitchen) count(dish Dish) {
	k.totalPrepTime += dish.PrepTime
	if dish.IsElaborate() {
		k.elaborateCount++
	}
}

func (k *Kitchen) discount(dish Dish) {
	k.totalPrepTime -= dish.PrepTime
	if dish.IsElaborate() {
		k.elaborateCount--
	}
}

func (k *Kitchen) PrepTimeSum() int {
	return k.totalPrepTime
}

// AvgPrepTime rounds half away from zero, 0 when empty.
func (k *Kitchen) AvgPrepTime() int {
	size := k.dishes.CurrentSize()
	if size == 0 {
		return 0
	}
	return int(math.Round(float64(k.totalPrepTime) / float64(size)))
}

func (k *Kitchen) ElaborateDishCount() int {
	return k.elaborateCount
}

// ElaboratePercentage is rounded to two decimals, 0 when empty.
func (k *Kitchen) ElaboratePercentage() float64 {
	size := k.dishes.CurrentSize()
	if size == 0 {
		return 0
	}
	pct := float64(k.elaborateCount) / float64(size) * 100
	return math.Round(pct*100) / 100
}

// TallyCuisineTypes counts dishes whose cuisine name equals cuisine exactly.
// Unknown names tally zero.
func (k *Kitchen) TallyCuisineTypes(cuisine string) int {
	var cnt int
	for i, l := 0, k.dishes.CurrentSize(); i < l; i++ {
		if k.dishes.At(i).Cuisine.String() == cuisine {
			cnt++
		}
	}
	return cnt
}

// ReleaseDishesBelowPrepTime removes dishes with a prep time strictly below
// threshold. A zero threshold empties the kitchen, a negative one is ignored.
func (k *Kitchen) ReleaseDishesBelowPrepTime(threshold int) int {
	ctx, span := k.startTrace("releaseDishesBelowPrepTime", threshold)
	var removed int
	switch {
	case threshold < 0:
		addEvent(span, "ignored", map[string]any{"reason": "negative threshold"})
	case threshold == 0:
		removed = k.releaseAll(span)
	default:
		removed = k.releaseWhere(ctx, span, "releaseDishesBelowPrepTime", func(d Dish) bool {
			return d.PrepTime < threshold
		})
	}
	k.endTrace(span, removed)
	return removed
}

// ReleaseDishesOfCuisineType removes every dish of the named cuisine.
// AllCuisines empties the kitchen, any other unknown name removes nothing.
func (k *Kitchen) ReleaseDishesOfCuisineType(cuisine string) int {
	ctx, span := k.startTrace("releaseDishesOfCuisineType", cuisine)
	var removed int
	if cuisine == AllCuisines {
		removed = k.releaseAll(span)
	} else if c, ok := ParseCuisineType(cuisine); ok {
		removed = k.releaseWhere(ctx, span, "releaseDishesOfCuisineType", func(d Dish) bool {
			return d.Cuisine == c
		})
	} else {
		k.logger.Debug().Str("cuisine", cuisine).Msg("release skipped, unknown cuisine")
		addEvent(span, "ignored", map[string]any{"reason": "unknown cuisine"})
	}
	k.endTrace(span, removed)
	return removed
}

func (k *Kitchen) ReleaseAll() int {
	_, span := k.startTrace("releaseAll", nil)
	removed := k.releaseAll(span)
	k.endTrace(span, removed)
	return removed
}

func (k *Kitchen) releaseAll(span ITraceSpan) int {
	removed := k.dishes.CurrentSize()
	k.dishes.Clear()
	k.totalPrepTime = 0
	k.elaborateCount = 0
	k.logger.Debug().Int("removed", removed).Msg("kitchen cleared")
	setAttribute(span, "remaining", 0)
	return removed
}

// releaseWhere collects the matches before removing any of them, removal
// reorders the bag.
func (k *Kitchen) releaseWhere(ctx context.Context, span ITraceSpan, op string, match func(Dish) bool) int {
	var (
		before  map[string]string
		matches []Dish
		removed int
		debug   = k.logger.GetLevel() <= zerolog.DebugLevel
	)
	if debug {
		before = stringMap.FromStruct(k.Stats())
	}
	for i, l := 0, k.dishes.CurrentSize(); i < l; i++ {
		if d := k.dishes.At(i); match(d) {
			matches = append(matches, d)
		}
	}
	for _, d := range matches {
		if k.dishes.Remove(d) {
			k.discount(d)
			removed++
			if span != nil {
				_, sub := span.logSideEffect(ctx, "release", []any{d.Name})
				sub.End(d.Name, nil)
			}
		}
	}
	if debug {
		k.logger.Debug().Str("op", op).Int("removed", removed).Interface("previous", stringMap.StructsDelta(before, k.Stats())).Msg("dishes released")
	}
	setAttribute(span, "remaining", k.dishes.CurrentSize())
	return removed
}

func (k *Kitchen) Size() int {
	return k.dishes.CurrentSize()
}

func (k *Kitchen) IsEmpty() bool {
	return k.dishes.CurrentSize() == 0
}

func (k *Kitchen) Contains(dish Dish) bool {
	return k.dishes.Contains(dish)
}

func (k *Kitchen) Dishes() []Dish {
	res := make([]Dish, k.dishes.CurrentSize())
	for i := range res {
		res[i] = k.dishes.At(i)
	}
	return res
}

func (k *Kitchen) Stats() Stats {
	s := Stats{
		Dishes:              k.dishes.CurrentSize(),
		PrepTimeSum:         k.totalPrepTime,
		AvgPrepTime:         k.AvgPrepTime(),
		ElaborateCount:      k.elaborateCount,
		ElaboratePercentage: k.ElaboratePercentage(),
		Cuisines:            make(map[string]int, len(cuisineNames)),
	}
	for _, c := range CuisineTypes() {
		s.Cuisines[c.String()] = k.TallyCuisineTypes(c.String())
	}
	return s
}

func (k *Kitchen) derive() (prepTime, elaborate int) {
	for i, l := 0, k.dishes.CurrentSize(); i < l; i++ {
		d := k.dishes.At(i)
		prepTime += d.PrepTime
		if d.IsElaborate() {
			elaborate++
		}
	}
	return
}

// Verify re-derives both counters from the held dishes.
func (k *Kitchen) Verify() error {
	prepTime, elaborate := k.derive()
	if prepTime != k.totalPrepTime || elaborate != k.elaborateCount {
		return fmt.Errorf("%w: prep time %d (held %d), elaborate %d (held %d)", ErrCountersDrift, k.totalPrepTime, prepTime, k.elaborateCount, elaborate)
	}
	return nil
}

func (k *Kitchen) Recount() {
	k.totalPrepTime, k.elaborateCount = k.derive()
}

func (k *Kitchen) KitchenReport() {
	_ = k.Report(os.Stdout)
}

func (k *Kitchen) Report(w io.Writer) error {
	for _, c := range CuisineTypes() {
		if _, err := fmt.Fprintf(w, "%s: %d\n", c, k.TallyCuisineTypes(c.String())); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nAVERAGE PREP TIME: %d\nELABORATE: %.2f%%\n", k.AvgPrepTime(), k.ElaboratePercentage())
	return err
}

func (k *Kitchen) startTrace(spanName string, input any) (context.Context, ITraceSpan) {
	ctx := context.Background()
	if k.tracer == nil {
		return ctx, nil
	}
	return k.tracer.StartTrace(ctx, strconv.FormatInt(TraceIdGenerator(), 10), spanName, input)
}

func addEvent(span ITraceSpan, name string, attrs map[string]any) {
	if span != nil {
		span.AddEvent(name, attrs)
	}
}

func setAttribute(span ITraceSpan, key string, value any) {
	if span != nil {
		span.SetAttributes(key, value)
	}
}

func (k *Kitchen) endTrace(span ITraceSpan, output any) {
	if span != nil {
		span.End(output, nil)
	}
}
