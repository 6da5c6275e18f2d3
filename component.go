package shelf

import (
	"reflect"
	"sync"

	"github.com/TheBitDrifter/table"
)

// elementTypes hands out exactly one table.ElementType per Go type so that
// handles and columns created independently agree on element type ids.
var elementTypes = struct {
	sync.Mutex
	byType map[reflect.Type]table.ElementType
}{byType: make(map[reflect.Type]table.ElementType)}

func elementTypeFor[T any]() table.ElementType {
	typ := reflect.TypeFor[T]()

	elementTypes.Lock()
	defer elementTypes.Unlock()
	if et, ok := elementTypes.byType[typ]; ok {
		return et
	}
	et := table.FactoryNewElementType[T]()
	elementTypes.byType[typ] = et
	return et
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
