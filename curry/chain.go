package curry

// The Chain family curries at compile time: every step takes exactly one
// typed argument, so no boundary checks are needed. Use them when the
// argument types are known statically and grouping is not required.

func ChainI2O1[I1, I2, O1 any](fn func(I1, I2) O1) func(I1) func(I2) O1 {
	return func(i1 I1) func(I2) O1 {
		return func(i2 I2) O1 {
			return fn(i1, i2)
		}
	}
}

func ChainI3O1[I1, I2, I3, O1 any](fn func(I1, I2, I3) O1) func(I1) func(I2) func(I3) O1 {
	return func(i1 I1) func(I2) func(I3) O1 {
		return func(i2 I2) func(I3) O1 {
			return func(i3 I3) O1 {
				return fn(i1, i2, i3)
			}
		}
	}
}

func ChainI4O1[I1, I2, I3, I4, O1 any](fn func(I1, I2, I3, I4) O1) func(I1) func(I2) func(I3) func(I4) O1 {
	return func(i1 I1) func(I2) func(I3) func(I4) O1 {
		return func(i2 I2) func(I3) func(I4) O1 {
			return func(i3 I3) func(I4) O1 {
				return func(i4 I4) O1 {
					return fn(i1, i2, i3, i4)
				}
			}
		}
	}
}
