package diary

// QuestionFor returns the daily question for a date key's month and day.
// Questions repeat yearly; an unknown or malformed key yields "".
func QuestionFor(dateKey string) string {
	if len(dateKey) != len("2006-01-02") {
		return ""
	}
	return questions[dateKey[5:]]
}

// questions maps "MM-DD" to that day's prompt.
var questions = map[string]string{
	"01-01": "What do you hope this year brings you?",
	"01-02": "What habit would you like to build this year?",
	"01-03": "What is one thing you want to let go of?",
	"01-04": "Who do you want to spend more time with?",
	"01-05": "What did you start today, however small?",
	"01-06": "What would make tomorrow easier?",
	"01-07": "What are you most curious about right now?",
	"01-08": "What did you do today just for yourself?",
	"01-09": "What promise did you keep today?",
	"01-10": "What is something you want to learn this month?",
	"01-11": "What made today different from yesterday?",
	"01-12": "What small win did you have today?",
	"01-13": "What are you putting off, and why?",
	"01-14": "What gave you energy today?",
	"01-15": "Halfway through the month: how is it going?",
	"01-16": "What did you say no to today?",
	"01-17": "What would your younger self think of today?",
	"01-18": "What is one thing you did better than last week?",
	"01-19": "What do you want to be known for?",
	"01-20": "What took courage today?",
	"01-21": "What routine is serving you well?",
	"01-22": "What did you notice on your way somewhere today?",
	"01-23": "What would you do with one free hour?",
	"01-24": "What is a goal you quietly dropped? Do you miss it?",
	"01-25": "What did you make time for today?",
	"01-26": "Who did you help today?",
	"01-27": "What is one thing you are avoiding deciding?",
	"01-28": "What felt brand new today?",
	"01-29": "What will you finish before the month ends?",
	"01-30": "What did January teach you?",
	"01-31": "What is the one moment from this month to keep?",
	"02-01": "Who made you feel welcome recently?",
	"02-02": "What do you appreciate about your closest friend?",
	"02-03": "When did you last tell someone you were proud of them?",
	"02-04": "What kindness did you receive today?",
	"02-05": "Who do you miss, and what would you tell them?",
	"02-06": "What does a good conversation feel like to you?",
	"02-07": "Who challenged you to be better?",
	"02-08": "What did you forgive today, in yourself or others?",
	"02-09": "What makes you feel at home?",
	"02-10": "Who would you call first with good news?",
	"02-11": "What did someone teach you without meaning to?",
	"02-12": "What do you love that you rarely admit?",
	"02-13": "What small gesture meant a lot to you?",
	"02-14": "Who are you grateful to have in your life?",
	"02-15": "What is a friendship you want to tend to?",
	"02-16": "When did you last laugh until it hurt?",
	"02-17": "Whose advice do you trust most, and why?",
	"02-18": "What do people thank you for?",
	"02-19": "What boundary are you glad you set?",
	"02-20": "Who surprised you recently?",
	"02-21": "What did you share today?",
	"02-22": "What do you admire in someone you disagree with?",
	"02-23": "When do you feel most understood?",
	"02-24": "What would you like to apologize for?",
	"02-25": "Who believed in you when it mattered?",
	"02-26": "What makes you a good friend?",
	"02-27": "What conversation are you putting off?",
	"02-28": "Who deserves a thank-you note from you?",
	"02-29": "A bonus day: what will you do with it?",
	"03-01": "What are you ready to begin?",
	"03-02": "What felt hard a year ago that feels easy now?",
	"03-03": "What risk is worth taking this month?",
	"03-04": "What did you practice today?",
	"03-05": "Where did you push past a first no?",
	"03-06": "What mistake taught you the most?",
	"03-07": "What are you getting better at, slowly?",
	"03-08": "What would you attempt if no one was watching?",
	"03-09": "What feedback changed how you work?",
	"03-10": "What did you build or fix today?",
	"03-11": "What stubborn problem finally budged?",
	"03-12": "What did you do today that scared you a little?",
	"03-13": "What skill do you want a year from now?",
	"03-14": "Where are you coasting when you could be growing?",
	"03-15": "What did you unlearn recently?",
	"03-16": "What does progress look like for you this week?",
	"03-17": "What lucky break are you grateful for?",
	"03-18": "What question have you been afraid to ask?",
	"03-19": "What did you try for the first time?",
	"03-20": "Spring begins: what are you planting, figuratively?",
	"03-21": "What advice would you give yourself last March?",
	"03-22": "What is your next small step?",
	"03-23": "What did you persist at today?",
	"03-24": "Where did preparation pay off?",
	"03-25": "What strength did you lean on today?",
	"03-26": "What are you proving to yourself?",
	"03-27": "What would mastery of your craft look like?",
	"03-28": "What obstacle turned out to be a teacher?",
	"03-29": "What did you do today that compounds?",
	"03-30": "What has grown without you noticing?",
	"03-31": "What did March change in you?",
	"04-01": "What made you laugh today?",
	"04-02": "What did you notice outside today?",
	"04-03": "What smell takes you back somewhere?",
	"04-04": "What color was today, if it had one?",
	"04-05": "What sound do you love?",
	"04-06": "What did you eat today that you enjoyed?",
	"04-07": "Where did you slow down today?",
	"04-08": "What is blooming around you, literally or not?",
	"04-09": "What tiny detail made today better?",
	"04-10": "What weather suits your mood today?",
	"04-11": "What did you see today that others walked past?",
	"04-12": "What song fits this week?",
	"04-13": "What texture or touch do you remember from today?",
	"04-14": "What place feels fresh to you right now?",
	"04-15": "What ordinary thing felt beautiful today?",
	"04-16": "What did you photograph, or wish you had?",
	"04-17": "What light do you remember from today?",
	"04-18": "What did you taste for the first time recently?",
	"04-19": "What made you pause today?",
	"04-20": "What would you keep from today in a jar?",
	"04-21": "What is your favorite spot this season?",
	"04-22": "What in nature calmed you today?",
	"04-23": "What did the morning feel like?",
	"04-24": "What did you hear today that stuck with you?",
	"04-25": "What small comfort did you enjoy?",
	"04-26": "What felt alive today?",
	"04-27": "What did you watch for longer than a minute?",
	"04-28": "What scent is in the air these days?",
	"04-29": "What moment today deserved a second look?",
	"04-30": "What will you remember about this April?",
	"05-01": "What family memory came to mind today?",
	"05-02": "What tradition do you want to keep alive?",
	"05-03": "What did your parents get right?",
	"05-04": "What small thing are you thankful for today?",
	"05-05": "What did you do today that your family would smile at?",
	"05-06": "Who in your family do you resemble most?",
	"05-07": "What meal reminds you of home?",
	"05-08": "What story does your family retell?",
	"05-09": "What did you inherit that is not an object?",
	"05-10": "Who checked in on you recently?",
	"05-11": "What do you want to pass on?",
	"05-12": "What made your home feel like home today?",
	"05-13": "What old photo would you like to look at again?",
	"05-14": "What did you thank someone for today?",
	"05-15": "What everyday object are you oddly fond of?",
	"05-16": "What did you appreciate before losing it?",
	"05-17": "What routine moment do you secretly enjoy?",
	"05-18": "Who taught you something you use daily?",
	"05-19": "What comfort did you take for granted today?",
	"05-20": "What keeps you grounded?",
	"05-21": "What gift do you still remember receiving?",
	"05-22": "What did you give away gladly?",
	"05-23": "What are three small good things from today?",
	"05-24": "What place do you return to in your mind?",
	"05-25": "What did you celebrate today, even quietly?",
	"05-26": "What act of care did you witness?",
	"05-27": "What would you thank your home for?",
	"05-28": "Who from your past deserves your gratitude?",
	"05-29": "What abundance do you overlook?",
	"05-30": "What made today gentle?",
	"05-31": "What was May's warmest moment?",
	"06-01": "What is taking too much of your energy?",
	"06-02": "What did you leave at work today, for better or worse?",
	"06-03": "What would a lighter week look like?",
	"06-04": "What did you do at your own pace today?",
	"06-05": "What deserves more of your attention?",
	"06-06": "What deserves less of your attention?",
	"06-07": "What did you automate, delegate, or drop?",
	"06-08": "When were you fully present today?",
	"06-09": "What is your best hour of the day?",
	"06-10": "What did you protect time for today?",
	"06-11": "What busywork could you stop doing?",
	"06-12": "How did you rest today?",
	"06-13": "What deadline is real, and what is invented?",
	"06-14": "What did you single-task today?",
	"06-15": "Midway through the year: what needs rebalancing?",
	"06-16": "What meeting of minds went well today?",
	"06-17": "What would you tell your busiest self?",
	"06-18": "Where did you find slack in the day?",
	"06-19": "What are you doing out of habit, not choice?",
	"06-20": "What did you finish and actually close?",
	"06-21": "Longest day of the year: how did you spend the light?",
	"06-22": "What pace felt right today?",
	"06-23": "What did you decline to worry about?",
	"06-24": "What work felt like play today?",
	"06-25": "What would you do with a true day off?",
	"06-26": "What recharged you this week?",
	"06-27": "What is enough, for today?",
	"06-28": "What did you simplify?",
	"06-29": "What load did you set down today?",
	"06-30": "How do you want July to feel?",
	"07-01": "What adventure, big or small, do you want this month?",
	"07-02": "Where did you wander today?",
	"07-03": "What would you explore with zero obligations?",
	"07-04": "What felt free about today?",
	"07-05": "What place do you want to see once in your life?",
	"07-06": "What did you do outdoors today?",
	"07-07": "What spontaneous thing did you do recently?",
	"07-08": "What trip do you still talk about?",
	"07-09": "What is the best thing about where you live?",
	"07-10": "What did you discover by accident?",
	"07-11": "What would you pack for a one-bag week away?",
	"07-12": "What summer memory surfaced today?",
	"07-13": "What did you do today with no plan at all?",
	"07-14": "Where would you take a visitor first?",
	"07-15": "What new route or street did you try?",
	"07-16": "What water have you been near lately?",
	"07-17": "What did the evening look like today?",
	"07-18": "What game or sport did you enjoy recently?",
	"07-19": "What is your idea of a perfect day trip?",
	"07-20": "What did you dare today?",
	"07-21": "What map, real or mental, are you drawing?",
	"07-22": "What did you do today that felt like vacation?",
	"07-23": "Who would you bring on your next adventure?",
	"07-24": "What horizon are you looking toward?",
	"07-25": "What did you collect today: shells, tickets, moments?",
	"07-26": "What heat or warmth did you enjoy today?",
	"07-27": "What did you do barefoot or close to it?",
	"07-28": "What story will this summer leave you?",
	"07-29": "What did you improvise today?",
	"07-30": "What is still on your summer list?",
	"07-31": "What was July's brightest moment?",
	"08-01": "How did you rest today?",
	"08-02": "What does doing nothing well look like for you?",
	"08-03": "What did you read, watch, or listen to for pleasure?",
	"08-04": "What nap, break, or pause saved your day?",
	"08-05": "What are you recovering from?",
	"08-06": "What did you let be good enough today?",
	"08-07": "What slow morning or evening did you enjoy?",
	"08-08": "What do you do to truly switch off?",
	"08-09": "What made you feel looked after today?",
	"08-10": "What did you cook or eat slowly?",
	"08-11": "Where did you sit still today?",
	"08-12": "What worry did you put down, even briefly?",
	"08-13": "What did your body need today, and did it get it?",
	"08-14": "What small luxury did you allow yourself?",
	"08-15": "What does your ideal quiet day contain?",
	"08-16": "What did you daydream about?",
	"08-17": "What made you feel safe today?",
	"08-18": "What did you do slower than usual, on purpose?",
	"08-19": "What sleep, walk, or stretch helped this week?",
	"08-20": "What did you stop scrolling to do instead?",
	"08-21": "What comfort food or drink hit the spot?",
	"08-22": "What did you tidy that cleared your head?",
	"08-23": "What permission do you need to give yourself?",
	"08-24": "What did you enjoy without documenting it?",
	"08-25": "What is your favorite way to spend a rainy day?",
	"08-26": "What did you do today with zero productivity value?",
	"08-27": "What helped you breathe easier today?",
	"08-28": "What would your most rested self do tomorrow?",
	"08-29": "What did you save your energy for?",
	"08-30": "What does August owe you, and can you give it to yourself?",
	"08-31": "What was the most restful hour of this month?",
	"09-01": "What do you want to learn before winter?",
	"09-02": "What book or article stayed with you?",
	"09-03": "What question sent you down a rabbit hole?",
	"09-04": "What did you figure out today?",
	"09-05": "What subject could you talk about for an hour?",
	"09-06": "What did you teach someone recently?",
	"09-07": "What do you understand now that confused you before?",
	"09-08": "What tool did you finally learn properly?",
	"09-09": "What fact delighted you recently?",
	"09-10": "What would you study with a free year?",
	"09-11": "What did you look up today?",
	"09-12": "Whose way of thinking do you want to absorb?",
	"09-13": "What did you get wrong, and how did you find out?",
	"09-14": "What idea are you chewing on?",
	"09-15": "What class, real or imagined, would you sign up for?",
	"09-16": "What did you practice deliberately today?",
	"09-17": "What notes did you take today, on paper or in mind?",
	"09-18": "What expertise do you admire?",
	"09-19": "What did you ask an expert, or wish you could?",
	"09-20": "What changed your mind this year?",
	"09-21": "What did you observe closely today?",
	"09-22": "What pattern did you spot recently?",
	"09-23": "What are you a beginner at right now?",
	"09-24": "What did you read twice to understand?",
	"09-25": "What would you explain to a curious child?",
	"09-26": "What skill is rusting that you want to polish?",
	"09-27": "What experiment, formal or not, did you run?",
	"09-28": "What surprised you about something familiar?",
	"09-29": "What knowledge do you want to write down before you forget?",
	"09-30": "What did September teach you?",
	"10-01": "What are you ready to change?",
	"10-02": "What did you let go of today?",
	"10-03": "What season of life are you in?",
	"10-04": "What is falling away, like the leaves?",
	"10-05": "What did you keep that you should release?",
	"10-06": "What ending turned out to be a beginning?",
	"10-07": "What are you making room for?",
	"10-08": "What did you declutter, in your space or head?",
	"10-09": "What habit quietly disappeared, and do you miss it?",
	"10-10": "What transition are you in the middle of?",
	"10-11": "What did you outgrow?",
	"10-12": "What costume or role do you wear that is not you?",
	"10-13": "What fear shrank when you faced it?",
	"10-14": "What did you say goodbye to well?",
	"10-15": "What is darker or quieter now, and how does it feel?",
	"10-16": "What old belief no longer fits?",
	"10-17": "What did you replace recently, and was it better?",
	"10-18": "What chapter is closing this year?",
	"10-19": "What do you want to carry into the next season?",
	"10-20": "What became lighter once you dropped it?",
	"10-21": "What change did you resist that turned out fine?",
	"10-22": "What are you composting: what old thing feeds new growth?",
	"10-23": "What did you archive today, literally or not?",
	"10-24": "What tradition would you happily retire?",
	"10-25": "What scares you in a way worth exploring?",
	"10-26": "What did you repair instead of replacing?",
	"10-27": "What is the bravest thing you did this month?",
	"10-28": "What would you tell someone facing your same change?",
	"10-29": "What stayed constant through everything?",
	"10-30": "What mask did you take off this month?",
	"10-31": "What was October's biggest shift?",
	"11-01": "What are you most grateful for today?",
	"11-02": "Who made your week better?",
	"11-03": "What warmth did you find on a cold day?",
	"11-04": "What do you have enough of?",
	"11-05": "What went right today that usually goes wrong?",
	"11-06": "What convenience would your grandparents marvel at?",
	"11-07": "What did your body do for you today?",
	"11-08": "What free thing brought you joy?",
	"11-09": "What are you glad you did not give up on?",
	"11-10": "Whose work made your day easier, unseen?",
	"11-11": "What memory are you thankful to have?",
	"11-12": "What did you appreciate out loud today?",
	"11-13": "What problem do you no longer have?",
	"11-14": "What meal are you looking forward to?",
	"11-15": "What light or lamp or fire warmed you today?",
	"11-16": "What about your daily routine would you miss?",
	"11-17": "What did someone do for you without being asked?",
	"11-18": "What luck are you riding right now?",
	"11-19": "What comfort would you hate to lose?",
	"11-20": "What are you thankful you learned early?",
	"11-21": "What small tool or object served you well today?",
	"11-22": "Who would you write a gratitude letter to?",
	"11-23": "What made you feel rich today, money aside?",
	"11-24": "What did you share at a table recently?",
	"11-25": "What tradition of thanks do you keep?",
	"11-26": "What hard thing are you grateful happened?",
	"11-27": "What did you savor today?",
	"11-28": "What kindness will you pay forward?",
	"11-29": "What are you grateful for about this exact day?",
	"11-30": "What was November's warmest moment?",
	"12-01": "What do you want from this last month of the year?",
	"12-02": "What was this year's biggest surprise?",
	"12-03": "What did you make this year that you are proud of?",
	"12-04": "Who defined this year for you?",
	"12-05": "What was the hardest day, and how did you get through?",
	"12-06": "What gift do you want to give this year?",
	"12-07": "What did you do this year for the first time?",
	"12-08": "What almost happened this year?",
	"12-09": "What did you worry about that never came true?",
	"12-10": "What would the January version of you say now?",
	"12-11": "What photo sums up this year?",
	"12-12": "What did you read or watch this year that stuck?",
	"12-13": "What place mattered most this year?",
	"12-14": "What did you get better at this year?",
	"12-15": "What do you want to finish before the year ends?",
	"12-16": "What light are you enjoying in the dark season?",
	"12-17": "What will you do differently next year?",
	"12-18": "What deserves a celebration you have not given it?",
	"12-19": "What friendship grew this year?",
	"12-20": "What did this year cost you, and was it worth it?",
	"12-21": "Shortest day: what got you through the dark parts?",
	"12-22": "What tradition are you looking forward to?",
	"12-23": "What would you thank this year for?",
	"12-24": "What does tonight feel like?",
	"12-25": "What present, given or received, meant the most?",
	"12-26": "What leftovers, of food or feeling, are you enjoying?",
	"12-27": "What three words describe this year?",
	"12-28": "What do you want to remember about being this age?",
	"12-29": "What is your quiet hope for next year?",
	"12-30": "What unfinished thing is fine to leave unfinished?",
	"12-31": "What is the one moment from this year to keep?",
}
