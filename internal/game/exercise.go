package game

// Exercise is a difficulty level: the octaves whose notes are asked.
type Exercise struct {
	Num     int
	Octaves []Octave
}

// Exercises is the fixed progression, numbered from 1 without gaps.
var Exercises = []Exercise{
	{Num: 1, Octaves: []Octave{First}},
	{Num: 2, Octaves: []Octave{First, Second}},
	{Num: 3, Octaves: []Octave{Small, First}},
	{Num: 4, Octaves: []Octave{First, Second, Third}},
	{Num: 5, Octaves: []Octave{Great, Small, First}},
	{Num: 6, Octaves: []Octave{Small, First, Second, Third}},
	{Num: 7, Octaves: []Octave{Great, Small, First, Second, Third}},
}

func FirstExercise() *Exercise {
	return &Exercises[0]
}

func ExerciseByNumber(num int) (*Exercise, bool) {
	for i := range Exercises {
		if Exercises[i].Num == num {
			return &Exercises[i], true
		}
	}
	return nil, false
}
