package types

const HPaToMmHg = 0.750061

type Pressure struct {
	HPa float64
}

func NewPressureFromHPa(hpa float64) Pressure {
	return Pressure{HPa: hpa}
}

// MmHg returns the pressure in millimeters of mercury
func (p Pressure) MmHg() float64 {
	return p.HPa * HPaToMmHg
}
