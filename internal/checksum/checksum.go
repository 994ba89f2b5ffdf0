// Package checksum вычисляет детерминированные дайджесты содержимого.
// Дайджест не зависит от порядка ключей в map и безопасен для
// самоссылающихся структур: повторно посещенный контейнер кодируется
// терминальным маркером вместо бесконечной рекурсии.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"reflect"
	"sort"
	"strconv"
	"time"
)

// cycleMarker подставляется вместо контейнера, который уже находится
// выше по текущей ветке обхода
const cycleMarker = `"<cycle>"`

// Sum возвращает sha256 hex дайджест канонического представления значения.
// Одинаковое содержимое дает одинаковый дайджест независимо от порядка
// ключей map. Никогда не паникует.
func Sum(v any) string {
	h := sha256.New()
	c := canonicalizer{h: h, visited: make(map[uintptr]struct{})}
	c.write(reflect.ValueOf(v))
	return hex.EncodeToString(h.Sum(nil))
}

// SumChanges возвращает дайджест всего списка изменений.
// Используется как внешний checksum sync-пакета.
func SumChanges[T any](changes []T) string {
	return Sum(changes)
}

type canonicalizer struct {
	h       hash.Hash
	visited map[uintptr]struct{}
}

func (c *canonicalizer) emit(s string) {
	// hash.Hash.Write никогда не возвращает ошибку
	_, _ = c.h.Write([]byte(s))
}

// write кодирует значение в каноническом JSON-подобном виде:
// map с отсортированными ключами, слайсы по порядку, числа в
// минимальной десятичной записи (целое 1 и 1.0 совпадают).
func (c *canonicalizer) write(rv reflect.Value) {
	if !rv.IsValid() {
		c.emit("null")
		return
	}

	// time.Time обходим как единое значение, а не как структуру
	if rv.Type() == timeType {
		t := rv.Interface().(time.Time)
		c.emit(strconv.Quote(t.UTC().Format(time.RFC3339Nano)))
		return
	}

	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			c.emit("null")
			return
		}
		if rv.Kind() == reflect.Pointer {
			ptr := rv.Pointer()
			if _, seen := c.visited[ptr]; seen {
				c.emit(cycleMarker)
				return
			}
			c.visited[ptr] = struct{}{}
			c.write(rv.Elem())
			delete(c.visited, ptr)
			return
		}
		c.write(rv.Elem())

	case reflect.Bool:
		c.emit(strconv.FormatBool(rv.Bool()))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		c.emit(strconv.FormatInt(rv.Int(), 10))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		c.emit(strconv.FormatUint(rv.Uint(), 10))

	case reflect.Float32, reflect.Float64:
		c.writeFloat(rv.Float())

	case reflect.String:
		c.emit(strconv.Quote(rv.String()))

	case reflect.Slice, reflect.Array:
		c.writeList(rv)

	case reflect.Map:
		c.writeMap(rv)

	case reflect.Struct:
		c.writeStruct(rv)

	default:
		// chan, func и прочее несериализуемое - стабильный маркер типа
		c.emit(strconv.Quote("<" + rv.Kind().String() + ">"))
	}
}

// writeFloat пишет число в минимальной записи: 1.0 кодируется как "1",
// поэтому значение не зависит от того, пришло оно как int или float64
func (c *canonicalizer) writeFloat(f float64) {
	if f == float64(int64(f)) {
		c.emit(strconv.FormatInt(int64(f), 10))
		return
	}
	c.emit(strconv.FormatFloat(f, 'g', -1, 64))
}

func (c *canonicalizer) writeList(rv reflect.Value) {
	if rv.Kind() == reflect.Slice {
		if rv.IsNil() {
			c.emit("null")
			return
		}
		ptr := rv.Pointer()
		if _, seen := c.visited[ptr]; seen {
			c.emit(cycleMarker)
			return
		}
		c.visited[ptr] = struct{}{}
		defer delete(c.visited, ptr)
	}

	c.emit("[")
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			c.emit(",")
		}
		c.write(rv.Index(i))
	}
	c.emit("]")
}

func (c *canonicalizer) writeMap(rv reflect.Value) {
	if rv.IsNil() {
		c.emit("null")
		return
	}
	ptr := rv.Pointer()
	if _, seen := c.visited[ptr]; seen {
		c.emit(cycleMarker)
		return
	}
	c.visited[ptr] = struct{}{}
	defer delete(c.visited, ptr)

	keys := rv.MapKeys()
	names := make([]string, len(keys))
	byName := make(map[string]reflect.Value, len(keys))
	for i, k := range keys {
		name := mapKeyString(k)
		names[i] = name
		byName[name] = k
	}
	sort.Strings(names)

	c.emit("{")
	for i, name := range names {
		if i > 0 {
			c.emit(",")
		}
		c.emit(strconv.Quote(name))
		c.emit(":")
		c.write(rv.MapIndex(byName[name]))
	}
	c.emit("}")
}

// writeStruct кодирует экспортируемые поля как map, уважая json-теги
func (c *canonicalizer) writeStruct(rv reflect.Value) {
	rt := rv.Type()
	type field struct {
		name  string
		value reflect.Value
	}
	fields := make([]field, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := jsonFieldName(sf)
		if name == "-" {
			continue
		}
		fields = append(fields, field{name: name, value: rv.Field(i)})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].name < fields[j].name })

	c.emit("{")
	for i, f := range fields {
		if i > 0 {
			c.emit(",")
		}
		c.emit(strconv.Quote(f.name))
		c.emit(":")
		c.write(f.value)
	}
	c.emit("}")
}

var timeType = reflect.TypeOf(time.Time{})

func mapKeyString(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}

func jsonFieldName(sf reflect.StructField) string {
	tag, ok := sf.Tag.Lookup("json")
	if !ok || tag == "" {
		return sf.Name
	}
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			if i == 0 {
				return sf.Name
			}
			return tag[:i]
		}
	}
	return tag
}
