package verifier

import (
	"sync"

	"github.com/tmsolve/turingmachine/codeset"
)

// numVerifiers is the size of the hard-coded verifier catalog.
const numVerifiers = 48

// catalog lazily builds and memoizes the 48-entry verifier catalog. The
// table is immutable process-wide data once built; there is no mutation
// after initialization, and building it is cheap enough not to warrant
// eager package-init work.
var catalog = sync.OnceValue(buildCatalog)

// buildCatalog constructs the full, one-indexed catalog of 48 verifiers.
// Each entry's options must partition codeset.All(); see
// TestCatalogPartitions.
func buildCatalog() [numVerifiers]Verifier {
	return [numVerifiers]Verifier{
		// 1
		newVerifier("the T number compared to 1",
			newOption("T = 1", func(c codeset.Code) bool { return c.Triangle() == 1 }),
			newOption("T > 1", func(c codeset.Code) bool { return c.Triangle() > 1 }),
		),
		// 2
		newVerifier("the T number compared to 3",
			newOption("T < 3", func(c codeset.Code) bool { return c.Triangle() < 3 }),
			newOption("T = 3", func(c codeset.Code) bool { return c.Triangle() == 3 }),
			newOption("T > 3", func(c codeset.Code) bool { return c.Triangle() > 3 }),
		),
		// 3
		newVerifier("the S number compared to 3",
			newOption("S < 3", func(c codeset.Code) bool { return c.Square() < 3 }),
			newOption("S = 3", func(c codeset.Code) bool { return c.Square() == 3 }),
			newOption("S > 3", func(c codeset.Code) bool { return c.Square() > 3 }),
		),
		// 4
		newVerifier("the S number compared to 4",
			newOption("S < 4", func(c codeset.Code) bool { return c.Square() < 4 }),
			newOption("S = 4", func(c codeset.Code) bool { return c.Square() == 4 }),
			newOption("S > 4", func(c codeset.Code) bool { return c.Square() > 4 }),
		),
		// 5
		newVerifier("whether T is even or odd",
			newOption("T is even", func(c codeset.Code) bool { return c.Triangle()%2 == 0 }),
			newOption("T is odd", func(c codeset.Code) bool { return c.Triangle()%2 == 1 }),
		),
		// 6
		newVerifier("whether S is even or odd",
			newOption("S is even", func(c codeset.Code) bool { return c.Square()%2 == 0 }),
			newOption("S is odd", func(c codeset.Code) bool { return c.Square()%2 == 1 }),
		),
		// 7
		newVerifier("whether C is even or odd",
			newOption("C is even", func(c codeset.Code) bool { return c.Circle()%2 == 0 }),
			newOption("C is odd", func(c codeset.Code) bool { return c.Circle()%2 == 1 }),
		),
		// 8
		newVerifier("the number of 1s in the code",
			newOption("zero 1s", func(c codeset.Code) bool { return c.CountDigit(1) == 0 }),
			newOption("one 1", func(c codeset.Code) bool { return c.CountDigit(1) == 1 }),
			newOption("two 1s", func(c codeset.Code) bool { return c.CountDigit(1) == 2 }),
			newOption("three 1s", func(c codeset.Code) bool { return c.CountDigit(1) == 3 }),
		),
		// 9
		newVerifier("the number of 3s in the code",
			newOption("zero 3s", func(c codeset.Code) bool { return c.CountDigit(3) == 0 }),
			newOption("one 3", func(c codeset.Code) bool { return c.CountDigit(3) == 1 }),
			newOption("two 3s", func(c codeset.Code) bool { return c.CountDigit(3) == 2 }),
			newOption("three 3s", func(c codeset.Code) bool { return c.CountDigit(3) == 3 }),
		),
		// 10
		newVerifier("the number of 4s in the code",
			newOption("zero 4s", func(c codeset.Code) bool { return c.CountDigit(4) == 0 }),
			newOption("one 4", func(c codeset.Code) bool { return c.CountDigit(4) == 1 }),
			newOption("two 4s", func(c codeset.Code) bool { return c.CountDigit(4) == 2 }),
			newOption("three 4s", func(c codeset.Code) bool { return c.CountDigit(4) == 3 }),
		),
		// 11
		newVerifier("the T number compared to the S number",
			newOption("T < S", func(c codeset.Code) bool { return c.Triangle() < c.Square() }),
			newOption("T = S", func(c codeset.Code) bool { return c.Triangle() == c.Square() }),
			newOption("T > S", func(c codeset.Code) bool { return c.Triangle() > c.Square() }),
		),
		// 12
		newVerifier("the T number compared to the C number",
			newOption("T < C", func(c codeset.Code) bool { return c.Triangle() < c.Circle() }),
			newOption("T = C", func(c codeset.Code) bool { return c.Triangle() == c.Circle() }),
			newOption("T > C", func(c codeset.Code) bool { return c.Triangle() > c.Circle() }),
		),
		// 13
		newVerifier("the S number compared to the C number",
			newOption("S < C", func(c codeset.Code) bool { return c.Square() < c.Circle() }),
			newOption("S = C", func(c codeset.Code) bool { return c.Square() == c.Circle() }),
			newOption("S > C", func(c codeset.Code) bool { return c.Square() > c.Circle() }),
		),
		// 14
		newVerifier("which colour's number is strictly smaller than both others",
			newOption("T < S, C", func(c codeset.Code) bool { return c.Triangle() < c.Square() && c.Triangle() < c.Circle() }),
			newOption("S < T, C", func(c codeset.Code) bool { return c.Square() < c.Triangle() && c.Square() < c.Circle() }),
			newOption("C < S, T", func(c codeset.Code) bool { return c.Circle() < c.Square() && c.Circle() < c.Triangle() }),
		),
		// 15
		newVerifier("which colour's number is strictly larger than both others",
			newOption("T > S, C", func(c codeset.Code) bool { return c.Triangle() > c.Square() && c.Triangle() > c.Circle() }),
			newOption("S > T, C", func(c codeset.Code) bool { return c.Square() > c.Triangle() && c.Square() > c.Circle() }),
			newOption("C > S, T", func(c codeset.Code) bool { return c.Circle() > c.Square() && c.Circle() > c.Triangle() }),
		),
		// 16
		newVerifier("the number of even digits compared to the number of odd digits",
			newOption("EVEN >= ODD", func(c codeset.Code) bool { return c.CountEven() >= 2 }),
			newOption("EVEN < ODD", func(c codeset.Code) bool { return c.CountEven() <= 1 }),
		),
		// 17
		newVerifier("how many even digits there are in the code",
			newOption("zero even digits", func(c codeset.Code) bool { return c.CountEven() == 0 }),
			newOption("one even digit", func(c codeset.Code) bool { return c.CountEven() == 1 }),
			newOption("two even digits", func(c codeset.Code) bool { return c.CountEven() == 2 }),
			newOption("three even digits", func(c codeset.Code) bool { return c.CountEven() == 3 }),
		),
		// 18
		newVerifier("whether the sum of all digits is even or odd",
			newOption("T+S+C = EVEN", func(c codeset.Code) bool { return c.DigitSum()%2 == 0 }),
			newOption("T+S+C = ODD", func(c codeset.Code) bool { return c.DigitSum()%2 == 1 }),
		),
		// 19
		newVerifier("the sum of T and S compared to 6",
			newOption("T+S < 6", func(c codeset.Code) bool { return c.Triangle()+c.Square() < 6 }),
			newOption("T+S = 6", func(c codeset.Code) bool { return c.Triangle()+c.Square() == 6 }),
			newOption("T+S > 6", func(c codeset.Code) bool { return c.Triangle()+c.Square() > 6 }),
		),
		// 20
		newVerifier("whether a digit repeats itself in the code",
			newOption("a triple digit", func(c codeset.Code) bool { return c.Repeats() == 2 }),
			newOption("a double digit", func(c codeset.Code) bool { return c.Repeats() == 1 }),
			newOption("no repetition", func(c codeset.Code) bool { return c.Repeats() == 0 }),
		),
		// 21
		newVerifier("whether a digit is present exactly twice",
			newOption("no pairs", func(c codeset.Code) bool { return c.Repeats() != 1 }),
			newOption("a pair", func(c codeset.Code) bool { return c.Repeats() == 1 }),
		),
		// 22
		newVerifier("whether T, S, C is ascending, descending, or neither",
			newOption("ascending order", func(c codeset.Code) bool { return c.Order() == codeset.Ascending }),
			newOption("descending order", func(c codeset.Code) bool { return c.Order() == codeset.Descending }),
			newOption("no order", func(c codeset.Code) bool { return c.Order() == codeset.NoOrder }),
		),
		// 23
		newVerifier("the sum of all digits compared to 6",
			newOption("T+S+C < 6", func(c codeset.Code) bool { return c.DigitSum() < 6 }),
			newOption("T+S+C = 6", func(c codeset.Code) bool { return c.DigitSum() == 6 }),
			newOption("T+S+C > 6", func(c codeset.Code) bool { return c.DigitSum() > 6 }),
		),
		// 24
		newVerifier("whether there is a run of ascending digits",
			newOption("3 digits ascending", func(c codeset.Code) bool { return c.SequenceAscendingRun() == 3 }),
			newOption("2 digits ascending", func(c codeset.Code) bool { return c.SequenceAscendingRun() == 2 }),
			newOption("no digits ascending", func(c codeset.Code) bool { return c.SequenceAscendingRun() == 0 }),
		),
		// 25
		newVerifier("whether there is a run of ascending or descending digits",
			newOption("no run of digits", func(c codeset.Code) bool { return c.SequenceRun() == 0 }),
			newOption("2 digits in a run", func(c codeset.Code) bool { return c.SequenceRun() == 2 }),
			newOption("3 digits in a run", func(c codeset.Code) bool { return c.SequenceRun() == 3 }),
		),
		// 26
		newVerifier("a specific colour is less than 3",
			newOption("T < 3", func(c codeset.Code) bool { return c.Triangle() < 3 }),
			newOption("S < 3", func(c codeset.Code) bool { return c.Square() < 3 }),
			newOption("C < 3", func(c codeset.Code) bool { return c.Circle() < 3 }),
		),
		// 27
		newVerifier("a specific colour is less than 4",
			newOption("T < 4", func(c codeset.Code) bool { return c.Triangle() < 4 }),
			newOption("S < 4", func(c codeset.Code) bool { return c.Square() < 4 }),
			newOption("C < 4", func(c codeset.Code) bool { return c.Circle() < 4 }),
		),
		// 28
		newVerifier("a specific colour is equal to 1",
			newOption("T = 1", func(c codeset.Code) bool { return c.Triangle() == 1 }),
			newOption("S = 1", func(c codeset.Code) bool { return c.Square() == 1 }),
			newOption("C = 1", func(c codeset.Code) bool { return c.Circle() == 1 }),
		),
		// 29
		newVerifier("a specific colour is equal to 3",
			newOption("T = 3", func(c codeset.Code) bool { return c.Triangle() == 3 }),
			newOption("S = 3", func(c codeset.Code) bool { return c.Square() == 3 }),
			newOption("C = 3", func(c codeset.Code) bool { return c.Circle() == 3 }),
		),
		// 30
		newVerifier("a specific colour is equal to 4",
			newOption("T = 4", func(c codeset.Code) bool { return c.Triangle() == 4 }),
			newOption("S = 4", func(c codeset.Code) bool { return c.Square() == 4 }),
			newOption("C = 4", func(c codeset.Code) bool { return c.Circle() == 4 }),
		),
		// 31
		newVerifier("a specific colour is greater than 1",
			newOption("T > 1", func(c codeset.Code) bool { return c.Triangle() > 1 }),
			newOption("S > 1", func(c codeset.Code) bool { return c.Square() > 1 }),
			newOption("C > 1", func(c codeset.Code) bool { return c.Circle() > 1 }),
		),
		// 32
		newVerifier("a specific colour is greater than 3",
			newOption("T > 3", func(c codeset.Code) bool { return c.Triangle() > 3 }),
			newOption("S > 3", func(c codeset.Code) bool { return c.Square() > 3 }),
			newOption("C > 3", func(c codeset.Code) bool { return c.Circle() > 3 }),
		),
		// 33
		newVerifier("a specific colour is even or odd",
			newOption("T is even", func(c codeset.Code) bool { return c.Triangle()%2 == 0 }),
			newOption("T is odd", func(c codeset.Code) bool { return c.Triangle()%2 == 1 }),
			newOption("S is even", func(c codeset.Code) bool { return c.Square()%2 == 0 }),
			newOption("S is odd", func(c codeset.Code) bool { return c.Square()%2 == 1 }),
			newOption("C is even", func(c codeset.Code) bool { return c.Circle()%2 == 0 }),
			newOption("C is odd", func(c codeset.Code) bool { return c.Circle()%2 == 1 }),
		),
		// 34
		newVerifier("which colour has the smallest number (ties included)",
			newOption("T <= S, C", func(c codeset.Code) bool { return c.Triangle() <= c.Square() && c.Triangle() <= c.Circle() }),
			newOption("S <= T, C", func(c codeset.Code) bool { return c.Square() <= c.Triangle() && c.Square() <= c.Circle() }),
			newOption("C <= S, T", func(c codeset.Code) bool { return c.Circle() <= c.Square() && c.Circle() <= c.Triangle() }),
		),
		// 35
		newVerifier("which colour has the largest number (ties included)",
			newOption("T >= S, C", func(c codeset.Code) bool { return c.Triangle() >= c.Square() && c.Triangle() >= c.Circle() }),
			newOption("S >= T, C", func(c codeset.Code) bool { return c.Square() >= c.Triangle() && c.Square() >= c.Circle() }),
			newOption("C >= S, T", func(c codeset.Code) bool { return c.Circle() >= c.Square() && c.Circle() >= c.Triangle() }),
		),
		// 36
		newVerifier("the sum of all digits is a multiple of 3, 4, or 5",
			newOption("T+S+C = 3x", func(c codeset.Code) bool { return c.DigitSum()%3 == 0 }),
			newOption("T+S+C = 4x", func(c codeset.Code) bool { return c.DigitSum()%4 == 0 }),
			newOption("T+S+C = 5x", func(c codeset.Code) bool { return c.DigitSum()%5 == 0 }),
		),
		// 37
		newVerifier("the sum of two specific colours is equal to 4",
			newOption("T+S = 4", func(c codeset.Code) bool { return c.Triangle()+c.Square() == 4 }),
			newOption("T+C = 4", func(c codeset.Code) bool { return c.Triangle()+c.Circle() == 4 }),
			newOption("S+C = 4", func(c codeset.Code) bool { return c.Square()+c.Circle() == 4 }),
		),
		// 38
		newVerifier("the sum of two specific colours is equal to 6",
			newOption("T+S = 6", func(c codeset.Code) bool { return c.Triangle()+c.Square() == 6 }),
			newOption("T+C = 6", func(c codeset.Code) bool { return c.Triangle()+c.Circle() == 6 }),
			newOption("S+C = 6", func(c codeset.Code) bool { return c.Square()+c.Circle() == 6 }),
		),
		// 39
		newVerifier("one specific colour compared to 1",
			newOption("T = 1", func(c codeset.Code) bool { return c.Triangle() == 1 }),
			newOption("T > 1", func(c codeset.Code) bool { return c.Triangle() > 1 }),
			newOption("S = 1", func(c codeset.Code) bool { return c.Square() == 1 }),
			newOption("S > 1", func(c codeset.Code) bool { return c.Square() > 1 }),
			newOption("C = 1", func(c codeset.Code) bool { return c.Circle() == 1 }),
			newOption("C > 1", func(c codeset.Code) bool { return c.Circle() > 1 }),
		),
		// 40
		newVerifier("one specific colour compared to 3",
			newOption("T < 3", func(c codeset.Code) bool { return c.Triangle() < 3 }),
			newOption("T = 3", func(c codeset.Code) bool { return c.Triangle() == 3 }),
			newOption("T > 3", func(c codeset.Code) bool { return c.Triangle() > 3 }),
			newOption("S < 3", func(c codeset.Code) bool { return c.Square() < 3 }),
			newOption("S = 3", func(c codeset.Code) bool { return c.Square() == 3 }),
			newOption("S > 3", func(c codeset.Code) bool { return c.Square() > 3 }),
			newOption("C < 3", func(c codeset.Code) bool { return c.Circle() < 3 }),
			newOption("C = 3", func(c codeset.Code) bool { return c.Circle() == 3 }),
			newOption("C > 3", func(c codeset.Code) bool { return c.Circle() > 3 }),
		),
		// 41
		newVerifier("one specific colour compared to 4",
			newOption("T < 4", func(c codeset.Code) bool { return c.Triangle() < 4 }),
			newOption("T = 4", func(c codeset.Code) bool { return c.Triangle() == 4 }),
			newOption("T > 4", func(c codeset.Code) bool { return c.Triangle() > 4 }),
			newOption("S < 4", func(c codeset.Code) bool { return c.Square() < 4 }),
			newOption("S = 4", func(c codeset.Code) bool { return c.Square() == 4 }),
			newOption("S > 4", func(c codeset.Code) bool { return c.Square() > 4 }),
			newOption("C < 4", func(c codeset.Code) bool { return c.Circle() < 4 }),
			newOption("C = 4", func(c codeset.Code) bool { return c.Circle() == 4 }),
			newOption("C > 4", func(c codeset.Code) bool { return c.Circle() > 4 }),
		),
		// 42
		newVerifier("which colour is the smallest or the largest",
			newOption("T < C, S", func(c codeset.Code) bool { return c.Triangle() < c.Circle() && c.Triangle() < c.Square() }),
			newOption("T > C, S", func(c codeset.Code) bool { return c.Triangle() > c.Circle() && c.Triangle() > c.Square() }),
			newOption("S < T, C", func(c codeset.Code) bool { return c.Square() < c.Triangle() && c.Square() < c.Circle() }),
			newOption("S > T, C", func(c codeset.Code) bool { return c.Square() > c.Triangle() && c.Square() > c.Circle() }),
			newOption("C < S, T", func(c codeset.Code) bool { return c.Circle() < c.Square() && c.Circle() < c.Triangle() }),
			newOption("C > S, T", func(c codeset.Code) bool { return c.Circle() > c.Square() && c.Circle() > c.Triangle() }),
		),
		// 43
		newVerifier("the T number compared to another specific colour",
			newOption("T < S", func(c codeset.Code) bool { return c.Triangle() < c.Square() }),
			newOption("T < C", func(c codeset.Code) bool { return c.Triangle() < c.Circle() }),
			newOption("T = S", func(c codeset.Code) bool { return c.Triangle() == c.Square() }),
			newOption("T = C", func(c codeset.Code) bool { return c.Triangle() == c.Circle() }),
			newOption("T > S", func(c codeset.Code) bool { return c.Triangle() > c.Square() }),
			newOption("T > C", func(c codeset.Code) bool { return c.Triangle() > c.Circle() }),
		),
		// 44
		newVerifier("the S number compared to another specific colour",
			newOption("S < T", func(c codeset.Code) bool { return c.Square() < c.Triangle() }),
			newOption("S < C", func(c codeset.Code) bool { return c.Square() < c.Circle() }),
			newOption("S = T", func(c codeset.Code) bool { return c.Square() == c.Triangle() }),
			newOption("S = C", func(c codeset.Code) bool { return c.Square() == c.Circle() }),
			newOption("S > T", func(c codeset.Code) bool { return c.Square() > c.Triangle() }),
			newOption("S > C", func(c codeset.Code) bool { return c.Square() > c.Circle() }),
		),
		// 45
		newVerifier("how many 1s or how many 3s there are in the code",
			newOption("zero 1s", func(c codeset.Code) bool { return c.CountDigit(1) == 0 }),
			newOption("one 1", func(c codeset.Code) bool { return c.CountDigit(1) == 1 }),
			newOption("two 1s", func(c codeset.Code) bool { return c.CountDigit(1) == 2 }),
			newOption("zero 3s", func(c codeset.Code) bool { return c.CountDigit(3) == 0 }),
			newOption("one 3", func(c codeset.Code) bool { return c.CountDigit(3) == 1 }),
			newOption("two 3s", func(c codeset.Code) bool { return c.CountDigit(3) == 2 }),
		),
		// 46
		newVerifier("how many 3s or how many 4s there are in the code",
			newOption("zero 3s", func(c codeset.Code) bool { return c.CountDigit(3) == 0 }),
			newOption("one 3", func(c codeset.Code) bool { return c.CountDigit(3) == 1 }),
			newOption("two 3s", func(c codeset.Code) bool { return c.CountDigit(3) == 2 }),
			newOption("zero 4s", func(c codeset.Code) bool { return c.CountDigit(4) == 0 }),
			newOption("one 4", func(c codeset.Code) bool { return c.CountDigit(4) == 1 }),
			newOption("two 4s", func(c codeset.Code) bool { return c.CountDigit(4) == 2 }),
		),
		// 47
		newVerifier("how many 1s or how many 4s there are in the code",
			newOption("zero 1s", func(c codeset.Code) bool { return c.CountDigit(1) == 0 }),
			newOption("one 1", func(c codeset.Code) bool { return c.CountDigit(1) == 1 }),
			newOption("two 1s", func(c codeset.Code) bool { return c.CountDigit(1) == 2 }),
			newOption("zero 4s", func(c codeset.Code) bool { return c.CountDigit(4) == 0 }),
			newOption("one 4", func(c codeset.Code) bool { return c.CountDigit(4) == 1 }),
			newOption("two 4s", func(c codeset.Code) bool { return c.CountDigit(4) == 2 }),
		),
		// 48
		newVerifier("one specific colour compared to another specific colour",
			newOption("T < S", func(c codeset.Code) bool { return c.Triangle() < c.Square() }),
			newOption("T = S", func(c codeset.Code) bool { return c.Triangle() == c.Square() }),
			newOption("T > S", func(c codeset.Code) bool { return c.Triangle() > c.Square() }),
			newOption("T < C", func(c codeset.Code) bool { return c.Triangle() < c.Circle() }),
			newOption("T = C", func(c codeset.Code) bool { return c.Triangle() == c.Circle() }),
			newOption("T > C", func(c codeset.Code) bool { return c.Triangle() > c.Circle() }),
			newOption("S < C", func(c codeset.Code) bool { return c.Square() < c.Circle() }),
			newOption("S = C", func(c codeset.Code) bool { return c.Square() == c.Circle() }),
			newOption("S > C", func(c codeset.Code) bool { return c.Square() > c.Circle() }),
		),
	}
}
