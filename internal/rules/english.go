package rules

import (
	"regexp"

	"github.com/jonathan/bloom-classifier/internal/types"
)

// English is the compiled rule profile for English exam questions. Categories
// are evaluated C6 down to C1 so higher-order patterns win, and no imperative
// gate applies to force overrides.
var English = newEnglishProfile()

func newEnglishProfile() *Profile {
	return &Profile{
		Locale: "en",

		absoluteBlockers: []blockerRule{
			{regexp.MustCompile(`(?i)\b(?:is|are)\s+called\b`), 0.96},
			{regexp.MustCompile(`(?i)\bknown\s+as\b`), 0.96},
			{regexp.MustCompile(`(?i)_{3,}`), 0.96},
			{regexp.MustCompile(`(?i)\.{4,}`), 0.96},
			{regexp.MustCompile(`(?i)\bexcept\s*:`), 0.96},
			{regexp.MustCompile(`(?i)\ball\s+of\s+the\s+following\s+except\b`), 0.96},
			// Bare definitional frame: "what is X" with at most a few words
			// after the article.
			{regexp.MustCompile(`(?i)^what\s+(?:is|are)\s+(?:a|an|the)?\s*(?:[\w-]+\s+){0,2}[\w-]+\s*\?*$`), 0.96},
		},

		technicalBlockers: compileAll([]string{
			`\bwhat\s+is\s+(?:a|an|the)?\s*(?:sql\s+injection|penetration\s+test\w*|security\s+audit|firewall|encryption|load\s+balanc\w+|dns|osi\s+model)\b`,
			`\b(?:sql\s+injection|penetration\s+testing|security\s+audit|firewall|encryption)\b[^?]*\b(?:is|are|refers\s+to)\b`,
		}),
		understandCues: compileAll([]string{
			`\bwhy\b`,
			`\bhow\s+does\b`,
			`\bwhat\s+causes\b`,
		}),

		falseCreate: compileAll([]string{
			`\b(?:is|are|was|were)\s+(?:designed|created|developed|built)\b`,
			`\bthe\s+system\s+(?:that|which)\s+(?:creates|generates|produces)\b`,
		}),
		falseEvaluate: compileAll([]string{
			`\bwhat\s+(?:criteria|basis|standards?)\b`,
			`\bon\s+what\s+basis\b`,
			`\bbased\s+on\s+what\b`,
		}),

		categories: []categoryRules{
			{
				category: types.C6,
				force: compileAll([]string{
					`\bcreate\s+(?:a|an|your)`,
					`\bdesign\s+(?:a|an|your)`,
					`\bconstruct\s+(?:a|an)`,
					`\bdevelop\s+(?:a|an|your)`,
					`\bgenerate\s+(?:a|an)`,
					`\binvent\s+(?:a|an)`,
					`\bformulate\s+(?:a|an)`,
					`\bdevise\s+(?:a|an)`,
					`\boriginate\s+(?:a|an)`,
					`\bplan\s+(?:a|an|how\s+to)`,
					`\bproduce\s+(?:a|an)`,
					`\bcompose\s+(?:a|an)`,
					`\bwrite\s+(?:a|an)\s+(?:new|original)`,
					`\bcombine\s+(?:the|these)\s+(?:to\s+create|into)`,
					`\bintegrate\s+(?:the|these)\s+(?:to\s+create|into)`,
					`\bsynthesize\s+(?:the|these)`,
					`\bcompile\s+(?:a|an)`,
					`\bpropose\s+(?:a|an|how)`,
					`\bhypothesize\s+(?:about|how)`,
					`\bspeculate\s+(?:about|on)`,
					`\bimagine\s+(?:a|an|how)`,
					`\bwhat\s+(?:alternative|other)\s+(?:ways|methods|solutions)`,
					`\bhow\s+else\s+(?:could|can|might)`,
					`\bwhat\s+if\s+we\s+(?:changed|modified|created)`,
					`\bcompose\s+an\s+algorithm`,
				}),
				keywords: []string{
					"create", "design", "construct", "develop", "formulate",
					"devise", "generate", "plan", "compose", "synthesize",
					"propose", "hypothesize", "invent", "build", "produce",
				},
			},
			{
				category: types.C5,
				force: compileAll([]string{
					`\bevaluate\s+(?:the|this|how|whether)`,
					`\bassess\s+(?:the|this|how|whether)`,
					`\bjudge\s+(?:the|whether)`,
					`\brate\s+(?:the|this)`,
					`\brank\s+(?:the|these)`,
					`\bcritique\s+(?:the|this)`,
					`\breview\s+(?:the|this)\s+(?:and|to\s+determine)`,
					`\bappraise\s+(?:the|this)`,
					`\bjustify\s+(?:your|the|why)`,
					`\bdefend\s+(?:your|the|why)`,
					`\bsupport\s+(?:your|the)\s+(?:opinion|position|argument|decision)`,
					`\bwhy\s+(?:do\s+you\s+think|is)\s+\w+\s+(?:better|worse|more|less)`,
					`\brecommend\s+(?:a|the|which)`,
					`\bwhich\s+(?:is\s+the\s+)?(?:best|worst|most\s+effective|least\s+effective)`,
					`\bwhat\s+is\s+the\s+(?:best|worst|most|least)`,
					`\bdecide\s+(?:whether|which|if)`,
					`\bprioritize\s+(?:the|these)`,
					`\bwhat\s+is\s+(?:more|most|less|least)\s+important`,
					`\bwhich\s+(?:would\s+be\s+)?(?:more|most)\s+(?:appropriate|suitable|effective)`,
					`\bis\s+this\s+(?:appropriate|suitable)`,
					`\bbased\s+on\s+(?:the\s+)?criteria`,
					`\baccording\s+to\s+(?:the\s+)?standards?`,
					`\bto\s+what\s+extent`,
					`\bhow\s+well\s+does`,
					`\bassess\s+the\s+trade-offs`,
					`\bjudge\s+the\s+effectiveness`,
				}),
				anti: compileAll([]string{
					`\bcreate\s+(?:a|an)\b`,
					`\bdesign\s+(?:a|an)\b`,
					`\bgenerate\s+(?:a|an)\b`,
					`\bproduce\s+(?:a|an)\b`,
					`\bcompose\s+(?:a|an)\b`,
					`\bdevelop\s+(?:a|an)\b`,
				}),
				keywords: []string{
					"evaluate", "assess", "judge", "critique", "justify",
					"defend", "recommend", "prioritize", "rate", "rank",
					"appraise", "value", "appropriate", "effective", "best",
					"support your",
				},
			},
			{
				category: types.C4,
				force: compileAll([]string{
					`\banalyze\s+(?:the|this|how|why)`,
					`\bexamine\s+(?:the|how|this)`,
					`\binvestigate\s+(?:the|how|why)`,
					`\bbreak\s+down\s+(?:the|into)`,
					`\bdiagnose\s+(?:the|what)`,
					`\bcompare\s+and\s+contrast`,
					`\bwhat\s+are\s+the\s+(?:differences|similarities)\s+between`,
					`\bhow\s+(?:does|do)\s+\w+\s+differ\s+from`,
					`\bwhat\s+are\s+the\s+trade-offs\s+between`,
					`\borganize\s+(?:the|these)\s+(?:into|by)`,
					`\bcategorize\s+(?:the|these)`,
					`\bclassify\s+(?:the|these)`,
					`\bstructure\s+(?:the|this)`,
					`\bwhat\s+is\s+the\s+function\s+of`,
					`\bidentify\s+the\s+(?:pattern|trend|relationship)`,
					`\bwhat\s+patterns?\s+(?:can\s+you|do\s+you)\s+see`,
					`\bwhat\s+(?:are\s+the\s+)?(?:causes?|reasons?)\s+(?:of|for|behind)`,
					`\bwhat\s+(?:are\s+the\s+)?effects?\s+of`,
					`\bwhy\s+does\s+\w+\s+(?:cause|lead\s+to|result\s+in)`,
					`\banalyze\s+why\s+(?:a|the)`,
					`\bwhat\s+are\s+the\s+(?:parts|components|elements)\s+of`,
					`\bidentify\s+the\s+(?:key|main|essential)\s+(?:factors|components)`,
					`\bidentify\s+the\s+(?:potential\s+)?(?:security\s+)?vulnerability`,
					`\bwhat\s+is\s+the\s+(?:primary\s+)?risk\s+of`,
				}),
				anti: compileAll([]string{
					`\bcreate\s+(?:a|an)\b`,
					`\bdesign\s+(?:a|an)\b`,
					`\bgenerate\s+(?:a|an)\b`,
					`\bpropose\s+(?:a|an)\b`,
					`\bevaluate\s+whether\b`,
					`\bjustify\b`,
				}),
				keywords: []string{
					"analyze", "examine", "investigate", "compare and contrast",
					"categorize", "classify", "organize", "differentiate",
					"distinguish", "relate", "function", "pattern", "diagnose",
					"break down", "trade-offs", "risk", "vulnerability",
				},
			},
			{
				category: types.C3,
				force: compileAll([]string{
					`\bapply\s+(?:the|this|these)`,
					`\buse\s+(?:the|this|these)\s+to\s+(?:solve|calculate|determine)`,
					`\bsolve\s+(?:the|this|using)`,
					`\bcalculate\s+(?:the|using)`,
					`\bcompute\s+(?:the|using)`,
					`\bimplement\s+(?:the|a)`,
					`\bexecute\s+(?:the|this)`,
					`\bcarry\s+out\s+(?:the|this)`,
					`\bperform\s+(?:the|this)`,
					`\bhow\s+would\s+you\s+(?:solve|use|apply)`,
					`\bwhat\s+would\s+happen\s+if`,
					`\bin\s+what\s+situation\s+would\s+you`,
					`\bunder\s+what\s+circumstances`,
					`\bdemonstrate\s+how\s+(?:to|you\s+would)`,
					`\bshow\s+how\s+(?:to|you\s+would)`,
					`\bpractice\s+(?:by|using)`,
					`\bmodify\s+(?:the|this)\s+(?:to|for)`,
					`\badapt\s+(?:the|this)\s+(?:to|for)`,
					`\badjust\s+(?:the|this)`,
					`\bat\s+which\s+layer\s+would\s+you`,
				}),
				anti: compileAll([]string{
					`\banalyze\s+(?:why|how)\b`,
					`\bevaluate\s+(?:whether|if)\b`,
					`\bcreate\s+(?:a\s+new|an\s+original)\b`,
					`\bdesign\s+(?:a\s+new|an\s+original)\b`,
					`\bjustify\s+your\b`,
					`\bcompare\s+and\s+contrast\b`,
				}),
				keywords: []string{
					"apply", "use", "solve", "calculate", "compute", "implement",
					"execute", "carry out", "perform", "demonstrate", "practice",
					"modify", "adapt", "given", "using",
				},
			},
			{
				category: types.C2,
				force: compileAll([]string{
					`\bexplain\s+(?:why|how|what|the)`,
					`\bdescribe\s+(?:the|how|what)`,
					`\bsummarize\s+(?:the|what)`,
					`\bparaphrase\s+(?:the|what)`,
					`\binterpret\s+(?:the|what)`,
					`\bwhat\s+does\s+(?:this|it|the\s+\w+)\s+mean`,
					`\bwhat\s+is\s+meant\s+by`,
					`\bin\s+your\s+own\s+words`,
					`\bthe\s+main\s+idea\s+(?:is|of)`,
					`\bthe\s+purpose\s+(?:is|of|for)`,
					`\bwhy\s+is\s+\w+\s+important`,
					`\binfer\s+(?:what|why|how|from)`,
					`\bconclude\s+(?:that|what)`,
					`\bpredict\s+(?:what|the)`,
					`\bestimate\s+(?:what|the)`,
					`\bcompare\s+(?:the|these)`,
					`\bcontrast\s+(?:the|these)`,
					`\bdistinguish\s+between`,
					`\bdifferentiate\s+between`,
					`\bthe\s+difference\s+between`,
					`\bwhat\s+is\s+the\s+relationship\s+between`,
					`\bhow\s+(?:does|do|is|are)\s+\w+\s+(?:related|connected)\s+to`,
					`\bthe\s+connection\s+between`,
					`\bgive\s+(?:an\s+)?example\s+of`,
					`\billustrate\s+(?:how|the)`,
					`\bdemonstrate\s+(?:what\s+you\s+understand|your\s+understanding)`,
				}),
				anti: compileAll([]string{
					`\bcalculate\b`,
					`\bsolve\s+(?:the\s+)?problem\b`,
					`\banalyze\s+(?:the\s+)?(?:data|results)\b`,
					`\bevaluate\s+(?:the\s+)?(?:effectiveness|quality)\b`,
					`\bcreate\s+(?:a|an)\b`,
					`\bdesign\s+(?:a|an)\b`,
					`\bapply\s+the\b`,
				}),
				keywords: []string{
					"explain", "describe", "summarize", "paraphrase", "interpret",
					"infer", "conclude", "predict", "estimate", "distinguish",
					"differentiate", "compare", "contrast", "illustrate", "mean",
					"relationship", "difference between",
				},
			},
			{
				category: types.C1,
				force: compileAll([]string{
					`\bwhat\s+is\s+(?:the\s+)?(?:definition|meaning|term)\s+(?:of|for)`,
					`\bdefine\s+(?:the\s+)?(?:term|concept|word)`,
					`\b(?:identify|name|list|state|label)\s+(?:the|a|an)`,
					`\bwho\s+(?:is|was|are|were)`,
					`\bwhen\s+(?:did|was|is|does)`,
					`\bwhere\s+(?:is|was|are|were|did)`,
					`\bwhich\s+of\s+the\s+following\s+is\s+(?:the\s+)?(?:definition|meaning)`,
					`\bwhat\s+does\s+\w+\s+stand\s+for`,
					`\brecall\s+(?:the|what|which)`,
					`\brecognize\s+(?:the|what|which)`,
					`\bmemorize\s+(?:the|what)`,
					`\brepeat\s+(?:the|what)`,
					`\breproduce\s+(?:the|what)`,
					`\bcomplete\s+the\s+(?:following|sentence|statement)`,
					`\bfill\s+in\s+the\s+blank`,
					`\bthe\s+term\s+for\s+this\s+is`,
					`\bthis\s+is\s+called`,
					`\bmatch\s+(?:the|each)`,
					`\bselect\s+(?:the\s+correct|all\s+that)`,
					`\bchoose\s+(?:the\s+correct|all\s+that)`,
					`\baccording\s+to\s+the\s+(?:text|passage|article)`,
					`\bas\s+stated\s+in`,
					`\bthe\s+(?:first|second|third|main|primary)\s+(?:step|stage|phase)\s+(?:is|in)`,
					`\b(?:how\s+many|what\s+type\s+of|what\s+kind\s+of)`,
					`\bwhich\s+(?:component|part)\s+is\s+(?:known|called)`,
					`\bthe\s+basic\s+unit\s+of`,
				}),
				anti: compileAll([]string{
					`\banalyze\b`,
					`\bevaluate\b`,
					`\bcreate\s+(?:a|an)\b`,
					`\bdesign\s+(?:a|an)\b`,
					`\bapply\s+to\s+(?:solve|calculate)\b`,
					`\bcompare\s+and\s+contrast\b`,
					`\bjustify\b`,
					`\bcritique\b`,
					`\bcalculate\b`,
				}),
				keywords: []string{
					"define", "identify", "list", "name", "recall", "recognize",
					"state", "label", "match", "who", "what", "when", "where",
					"memorize", "repeat", "reproduce", "stand for", "called",
					"known as", "basic unit",
				},
			},
		},

		imperativeGate: false,
		imperativeRe: regexp.MustCompile(`(?i)\b(?:calculate|compute|solve|apply|implement|execute|perform|demonstrate|analyze|examine|investigate|diagnose|categorize|classify|evaluate|assess|judge|critique|justify|recommend|prioritize|create|design|construct|develop|build|compose|devise|formulate|invent|produce|generate|propose|plan|write)\b`),
		creativeRe:   regexp.MustCompile(`(?i)\b(?:create|design|construct|develop|build|compose|devise|formulate|invent|produce|generate|propose|plan|synthesize|write)\b`),

		declarative: compileAll([]string{
			`\b(?:is|are)\s+(?:called|known\s+as|defined\s+as)\b[^?]*$`,
			`\bnamely\b[^?]*$`,
		}),

		tuning: DefaultTuning(),
	}
}
