package kitchen

import (
	"context"
)

type (
	CuisineType int

	Dish struct {
		Name        string      `json:"name" yaml:"name"`
		Ingredients []string    `json:"ingredients" yaml:"ingredients"`
		PrepTime    int         `json:"prepTime" yaml:"prepTime"`
		Price       float64     `json:"price" yaml:"price"`
		Cuisine     CuisineType `json:"cuisine" yaml:"cuisine"`
	}

	IEquatable[T any] interface {
		Equal(T) bool
	}

	// IBag is the capability set a Kitchen needs from its backing collection.
	IBag[T IEquatable[T]] interface {
		Add(T) bool
		Remove(T) bool
		Contains(T) bool
		Clear()
		CurrentSize() int
		At(int) T
	}

	Stats struct {
		Dishes              int            `json:"dishes"`
		PrepTimeSum         int            `json:"prepTimeSum"`
		AvgPrepTime         int            `json:"avgPrepTime"`
		ElaborateCount      int            `json:"elaborateCount"`
		ElaboratePercentage float64        `json:"elaboratePercentage"`
		Cuisines            map[string]int `json:"cuisines"`
	}

	ITraceableKitchen interface {
		StartTrace(ctx context.Context, id string, spanName string, input any) (context.Context, ITraceSpan)
	}
	ITraceSpan interface {
		End(output any, err error)
		AddEvent(name string, attrSets ...map[string]any)
		SetAttributes(key string, value any)
		logSideEffect(ctx context.Context, instanceName string, toLog []any) (context.Context, ITraceSpan)
	}
)
