package vec

// VectorMetrics contains statistical information about a vector's storage.
type VectorMetrics struct {
	Len           int     // Live elements
	Cap           int     // Slots in the backing storage
	ElemSize      int     // Bytes per element
	BytesLive     int     // Bytes held by live elements
	BytesReserved int     // Bytes reserved with the allocator
	Utilization   float64 // Ratio of live to reserved bytes (0.0-1.0)
}

// BytesLive returns the number of bytes occupied by live elements.
func (v *Vector[T]) BytesLive() int {
	return v.size * sizeOf[T]()
}

// BytesReserved returns the number of bytes reserved for the backing
// storage, live or not.
func (v *Vector[T]) BytesReserved() int {
	return v.data.Cap() * sizeOf[T]()
}

// Utilization returns the ratio of live to reserved bytes (0.0 to 1.0).
// Returns 0.0 when no storage is reserved.
func (v *Vector[T]) Utilization() float64 {
	reserved := v.BytesReserved()
	if reserved == 0 {
		return 0
	}
	return float64(v.BytesLive()) / float64(reserved)
}

// Metrics returns a snapshot of storage statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:           v.size,
		Cap:           v.data.Cap(),
		ElemSize:      sizeOf[T](),
		BytesLive:     v.BytesLive(),
		BytesReserved: v.BytesReserved(),
		Utilization:   v.Utilization(),
	}
}
