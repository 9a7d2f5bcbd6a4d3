package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key any, value any) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// GetSerialized returns deserialized value stored by the key or nil if
// there is nothing.
func GetSerialized(ctx storage.Context, key any) any {
	data := storage.Get(ctx, key)
	if data == nil {
		return nil
	}
	return std.Deserialize(data.([]byte))
}

// SetVersioned serializes data and puts it into contract storage prepended
// with a layout version byte.
func SetVersioned(ctx storage.Context, key any, version byte, value any) {
	data := append([]byte{version}, std.Serialize(value)...)
	storage.Put(ctx, key, data)
}

// GetVersioned returns deserialized value stored by SetVersioned. It
// returns nil if there is nothing and panics with corruptMsg if the layout
// version differs from the expected one.
func GetVersioned(ctx storage.Context, key any, version byte, corruptMsg string) any {
	data := storage.Get(ctx, key)
	if data == nil {
		return nil
	}
	raw := data.([]byte)
	if len(raw) < 2 || raw[0] != version {
		panic(corruptMsg)
	}
	return std.Deserialize(raw[1:])
}
