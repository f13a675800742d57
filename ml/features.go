package ml

// FeatureVector carries the six clinical inputs the risk model was trained
// on. Values() must keep the exact field order the model expects.
type FeatureVector struct {
	Age              int
	Pregnancies      int
	Smoking          bool
	ContraceptiveUse bool
	SexualPartners   int
	STDHistory       bool
}

// FeatureNames is the model's expected input order.
var FeatureNames = []string{
	"age",
	"pregnancies",
	"smoking",
	"contraceptive_use",
	"sexual_partners",
	"std_history",
}

func (f FeatureVector) Values() []float64 {
	return []float64{
		float64(f.Age),
		float64(f.Pregnancies),
		boolToFloat(f.Smoking),
		boolToFloat(f.ContraceptiveUse),
		float64(f.SexualPartners),
		boolToFloat(f.STDHistory),
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
