package dynarr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// FuzzArray drives an op stream against Array and a plain slice reference
// model, checking they never diverge.
func FuzzArray(f *testing.F) {
	f.Add([]byte{0, 1, 0, 2, 1, 0, 3, 0})
	f.Add([]byte{4, 10, 5, 2, 0, 7, 6})
	f.Add([]byte{0, 1, 2, 0, 0, 2, 1, 1, 7, 8})

	f.Fuzz(func(t *testing.T, ops []byte) {
		a := New[byte]()
		var model []byte

		for i := 0; i < len(ops); i++ {
			op := ops[i]
			var arg byte
			if i+1 < len(ops) {
				arg = ops[i+1]
				i++
			}

			switch op % 7 {
			case 0: // push
				require.NoError(t, a.PushBack(arg))
				model = append(model, arg)
			case 1: // pop
				if len(model) > 0 {
					require.Equal(t, model[len(model)-1], a.PopBack())
					model = model[:len(model)-1]
				}
			case 2: // insert
				pos := int(arg) % (len(model) + 1)
				require.NoError(t, a.Insert(pos, arg))
				model = append(model[:pos], append([]byte{arg}, model[pos:]...)...)
			case 3: // erase
				if len(model) > 0 {
					pos := int(arg) % len(model)
					a.Erase(pos)
					model = append(model[:pos], model[pos+1:]...)
				}
			case 4: // resize
				n := int(arg) % 64
				require.NoError(t, a.Resize(n))
				for len(model) < n {
					model = append(model, 0)
				}
				model = model[:n]
			case 5: // reserve
				require.NoError(t, a.Reserve(int(arg)))
			case 6: // set
				if len(model) > 0 {
					pos := int(arg) % len(model)
					a.Set(pos, op)
					model[pos] = op
				}
			}

			require.Equal(t, len(model), a.Len())
			require.LessOrEqual(t, a.Len(), a.Cap())
		}

		got := a.ToSlice()
		if len(model) == 0 {
			require.Empty(t, got)
		} else {
			require.Equal(t, model, got)
		}
	})
}
