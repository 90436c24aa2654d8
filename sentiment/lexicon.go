package sentiment

// wordScores maps lowercase tokens to their polarity weight, following the
// AFINN convention: weights range from -5 (most negative) to +5 (most
// positive). Tokens absent from the table contribute nothing.
var wordScores = map[string]int{
	// positive
	"able":        1,
	"admire":      3,
	"adorable":    3,
	"adore":       3,
	"amazing":     4,
	"appreciate":  2,
	"appreciated": 2,
	"awesome":     4,
	"beautiful":   3,
	"best":        3,
	"better":      2,
	"breeze":      2,
	"brilliant":   4,
	"calm":        2,
	"charming":    3,
	"cheerful":    3,
	"clean":       2,
	"clear":       1,
	"comfortable": 2,
	"convenient":  2,
	"cool":        1,
	"correct":     2,
	"courteous":   2,
	"delicious":   3,
	"delight":     3,
	"delighted":   3,
	"delightful":  3,
	"dependable":  2,
	"easy":        1,
	"effective":   2,
	"efficient":   2,
	"elegant":     2,
	"enjoy":       2,
	"enjoyable":   2,
	"enjoyed":     2,
	"excellent":   3,
	"exceptional": 3,
	"excited":     3,
	"exciting":    3,
	"fabulous":    4,
	"fair":        2,
	"fan":         3,
	"fantastic":   4,
	"fast":        1,
	"fine":        2,
	"flawless":    3,
	"fresh":       1,
	"friendly":    2,
	"fun":         4,
	"generous":    2,
	"glad":        3,
	"good":        3,
	"gorgeous":    3,
	"grateful":    3,
	"great":       3,
	"happy":       3,
	"helpful":     2,
	"honest":      2,
	"impressed":   3,
	"impressive":  3,
	"incredible":  4,
	"intuitive":   2,
	"joy":         3,
	"keen":        1,
	"kind":        2,
	"like":        2,
	"liked":       2,
	"likes":       2,
	"love":        3,
	"loved":       3,
	"lovely":      3,
	"loves":       3,
	"loyal":       3,
	"marvelous":   3,
	"neat":        1,
	"nice":        3,
	"outstanding": 5,
	"perfect":     3,
	"perfectly":   3,
	"pleasant":    3,
	"pleased":     3,
	"polite":      2,
	"positive":    2,
	"prompt":      1,
	"quality":     2,
	"quick":       1,
	"recommend":   2,
	"recommended": 2,
	"reliable":    2,
	"respectful":  2,
	"responsive":  2,
	"rocks":       2,
	"satisfied":   2,
	"seamless":    2,
	"sleek":       2,
	"smart":       1,
	"smooth":      2,
	"solid":       2,
	"splendid":    3,
	"stellar":     3,
	"strong":      2,
	"stunning":    4,
	"super":       3,
	"superb":      5,
	"support":     2,
	"supported":   2,
	"sweet":       2,
	"terrific":    4,
	"thank":       2,
	"thanks":      2,
	"thoughtful":  2,
	"thrilled":    5,
	"timely":      2,
	"top":         2,
	"useful":      2,
	"valuable":    2,
	"welcome":     2,
	"win":         4,
	"wonderful":   4,
	"worthy":      2,
	"wow":         4,

	// negative
	"angry":          -3,
	"annoyed":        -2,
	"annoying":       -2,
	"appalling":      -2,
	"atrocious":      -3,
	"awful":          -3,
	"bad":            -3,
	"breaks":         -1,
	"broke":          -1,
	"broken":         -1,
	"buggy":          -3,
	"bugs":           -3,
	"cheap":          -2,
	"clumsy":         -2,
	"complain":       -2,
	"complained":     -2,
	"complaint":      -2,
	"confused":       -2,
	"confusing":      -2,
	"crap":           -3,
	"crash":          -2,
	"crashed":        -2,
	"crashes":        -2,
	"damage":         -3,
	"damaged":        -3,
	"defect":         -3,
	"defective":      -3,
	"delay":          -1,
	"delayed":        -1,
	"disappointed":   -2,
	"disappointing":  -2,
	"disappointment": -2,
	"disgusting":     -3,
	"dishonest":      -2,
	"dreadful":       -3,
	"error":          -2,
	"errors":         -2,
	"fail":           -2,
	"failed":         -2,
	"fails":          -2,
	"failure":        -2,
	"fake":           -3,
	"faulty":         -2,
	"fraud":          -4,
	"frustrated":     -2,
	"frustrating":    -2,
	"frustration":    -2,
	"garbage":        -3,
	"glitch":         -2,
	"glitches":       -2,
	"hate":           -3,
	"hated":          -3,
	"hates":          -3,
	"horrible":       -3,
	"hopeless":       -2,
	"ignored":        -2,
	"inferior":       -2,
	"insult":         -2,
	"insulting":      -2,
	"lack":           -2,
	"lacking":        -2,
	"lousy":          -3,
	"mediocre":       -2,
	"mess":           -2,
	"messy":          -2,
	"miserable":      -3,
	"missing":        -2,
	"mistake":        -2,
	"mistakes":       -2,
	"nasty":          -3,
	"negative":       -2,
	"nightmare":      -3,
	"pathetic":       -3,
	"poor":           -2,
	"problem":        -2,
	"problems":       -2,
	"refund":         -2,
	"refused":        -2,
	"regret":         -2,
	"rude":           -2,
	"sad":            -2,
	"scam":           -4,
	"shoddy":         -3,
	"slow":           -2,
	"sorry":          -1,
	"stink":          -2,
	"stinks":         -2,
	"stuck":          -2,
	"stupid":         -2,
	"terrible":       -3,
	"trash":          -2,
	"ugly":           -3,
	"unacceptable":   -2,
	"unhappy":        -2,
	"unhelpful":      -2,
	"unprofessional": -2,
	"unreliable":     -2,
	"unresponsive":   -2,
	"unstable":       -2,
	"unusable":       -3,
	"upset":          -2,
	"useless":        -2,
	"waste":          -1,
	"wasted":         -2,
	"worse":          -3,
	"worst":          -3,
	"wrong":          -2,
}
