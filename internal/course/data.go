package course

// Official course list from the FUHSD Course Selection & Planning Guide
// 2026-2027. Aliases include the abbreviations and OCR misreadings that
// show up on scanned planning sheets.
var official = []Course{
	// English
	{Code: "1010", Name: "Literature & Writing", Credits: CreditYear, Category: CategoryEnglish, AGDesignator: "b",
		Aliases: []string{"Lit & Writing", "Lit/Writing", "LA", "L.A.", "Language Arts", "Lit Writing", "Literature and Writing", "English 9", "Eng 9", "English", "Lit/Wnting", "Llt/Writing"}},
	{Code: "1020", Name: "World Literature & Writing", Credits: CreditYear, Category: CategoryEnglish, AGDesignator: "b",
		Aliases: []string{"World Lit & Writing", "World Lit", "World Literature", "World Lit/Writing", "English 10", "Eng 10"}},
	{Code: "1130", Name: "American Literature & Writing", Credits: CreditYear, Category: CategoryEnglish, AGDesignator: "b",
		Aliases: []string{"American Lit & Writing", "American Lit", "Am Lit", "American Literature", "English 11", "Eng 11"}},
	{Code: "1260", Name: "Story and Style", Credits: CreditYear, Category: CategoryEnglish, AGDesignator: "b",
		Aliases: []string{"Story & Style", "Story and Style: A Critical Lens", "English 12", "Eng 12"}},
	{Code: "1190", Name: "AP English Language & Composition", Credits: CreditYear, Category: CategoryEnglish, AGDesignator: "b",
		Aliases: []string{"AP English Language", "AP Eng Lang", "AP English Lang & Comp", "AP Lang", "AP Language", "AP English Lang and Comp", "APEL"}},
	{Code: "1410", Name: "AP English Literature & Composition", Credits: CreditYear, Category: CategoryEnglish, AGDesignator: "b",
		Aliases: []string{"AP English Literature", "AP Eng Lit", "AP English Lit & Comp", "AP Lit", "AP Literature", "AP English Lit and Comp", "APEL"}},
	{Code: "1450", Name: "ELD Level 2", Credits: CreditYear, Category: CategoryEnglish,
		Aliases: []string{"ELD 2"}},
	{Code: "1460", Name: "ELD Level 3", Credits: CreditYear, Category: CategoryEnglish, AGDesignator: "b",
		Aliases: []string{"ELD 3"}},

	// Mathematics
	{Code: "2210", Name: "Algebra 1", Credits: CreditYear, Category: CategoryMath, AGDesignator: "c",
		Aliases: []string{"Alg 1", "Algebra I"}},
	{Code: "2230", Name: "Geometry", Credits: CreditYear, Category: CategoryMath, AGDesignator: "c",
		Aliases: []string{"Geom"}},
	{Code: "2310", Name: "Algebra 2", Credits: CreditYear, Category: CategoryMath, AGDesignator: "c",
		Aliases: []string{"Alg 2", "Algebra II"}},
	{Code: "2320", Name: "Algebra 2/Trigonometry", Credits: CreditYear, Category: CategoryMath, AGDesignator: "c",
		Aliases: []string{"Alg 2/Trig", "Algebra 2 Trig", "Alg 2 Trigonometry"}},
	{Code: "2390", Name: "Pre-Calculus", Credits: CreditYear, Category: CategoryMath, AGDesignator: "c",
		Aliases: []string{"Pre-Calc", "PreCalculus", "Precalc"}},
	{Code: "2420", Name: "Pre-Calculus Honors", Credits: CreditYear, Category: CategoryMath, AGDesignator: "c",
		Aliases: []string{"Pre-Calc Honors", "Pre-Calc H", "Precalc Honors", "PreCalculus Honors"}},
	{Name: "AP Calculus AB", Credits: CreditYear, Category: CategoryMath, AGDesignator: "c",
		Aliases: []string{"AP Calc AB", "Calc AB", "Calculus AB"}},
	{Name: "AP Calculus BC", Credits: CreditYear, Category: CategoryMath, AGDesignator: "c",
		Aliases: []string{"AP Calc BC", "Calc BC", "Calculus BC", "Calc-BC"}},
	{Name: "AP Statistics", Credits: CreditYear, Category: CategoryMath, AGDesignator: "c",
		Aliases: []string{"AP Stats", "Statistics", "Stats"}},
	{Name: "Multivariable Calculus", Credits: CreditYear, Category: CategoryMath, AGDesignator: "c",
		Aliases: []string{"Multi-Variable Calc", "Multivariable", "Multi Calc"}},
	{Name: "Linear Algebra", Credits: CreditYear, Category: CategoryMath, AGDesignator: "c",
		Aliases: []string{"Linear Alg", "Dual: Linear Alg", "Dual Enrollment Linear Algebra"}},
	{Name: "Differential Equations", Credits: CreditSemester, Category: CategoryMath, AGDesignator: "c",
		Aliases: []string{"Diff Eq", "Differential Eq"}},

	// Science
	{Name: "Biology", Credits: CreditYear, Category: CategoryScience, AGDesignator: "d",
		Aliases: []string{"Bio"}},
	{Name: "Biology Honors", Credits: CreditYear, Category: CategoryScience, AGDesignator: "d",
		Aliases: []string{"Bio Honors", "Bio H", "Biology H"}},
	{Name: "AP Biology", Credits: CreditYear, Category: CategoryScience, AGDesignator: "d",
		Aliases: []string{"AP Bio"}},
	{Name: "Chemistry", Credits: CreditYear, Category: CategoryScience, AGDesignator: "d",
		Aliases: []string{"Chem"}},
	{Name: "Chemistry Honors", Credits: CreditYear, Category: CategoryScience, AGDesignator: "d",
		Aliases: []string{"Chem Honors", "Chem H", "Chemistry H"}},
	{Name: "AP Chemistry", Credits: CreditYear, Category: CategoryScience, AGDesignator: "d",
		Aliases: []string{"AP Chem"}},
	{Name: "Physics", Credits: CreditYear, Category: CategoryScience, AGDesignator: "d",
		Aliases: []string{"Phys"}},
	{Name: "Physics Honors", Credits: CreditYear, Category: CategoryScience, AGDesignator: "d",
		Aliases: []string{"Physics H", "Phys Honors", "Phys H"}},
	{Name: "AP Physics 1", Credits: CreditYear, Category: CategoryScience, AGDesignator: "d",
		Aliases: []string{"AP Phys 1"}},
	{Name: "AP Physics 2", Credits: CreditYear, Category: CategoryScience, AGDesignator: "d",
		Aliases: []string{"AP Phys 2"}},
	{Name: "AP Physics C: Mechanics", Credits: CreditYear, Category: CategoryScience, AGDesignator: "d",
		Aliases: []string{"AP Physics C", "AP Phys C", "Physics C Mechanics", "AP Physics C Mech", "AP Phys C Mech", "AP Physics C: Mech", "AP Phys C:Mech", "Physics C: Mechanics", "Phys C Mechanics", "C:Mech", "C Mech"}},
	{Name: "AP Physics C: Electricity & Magnetism", Credits: CreditYear, Category: CategoryScience, AGDesignator: "d",
		Aliases: []string{"AP Physics C E&M", "Physics C E&M", "AP Phys C E&M", "AP Physics C: E&M", "Physics C: E&M", "AP Phys C:E&M", "C:E&M"}},
	{Name: "AP Environmental Science", Credits: CreditYear, Category: CategoryScience, AGDesignator: "d",
		Aliases: []string{"AP Environmental", "APES", "AP Enviro", "Environmental Science"}},
	{Name: "Physiology", Credits: CreditYear, Category: CategoryScience, AGDesignator: "d",
		Aliases: []string{"Physio"}},
	{Name: "Science & Society", Credits: CreditYear, Category: CategoryScience, AGDesignator: "d",
		Aliases: []string{"Science and Society"}},

	// Social Science
	{Name: "World History", Credits: CreditYear, Category: CategorySocial, AGDesignator: "a",
		Aliases: []string{"World Hist"}},
	{Name: "World History Honors", Credits: CreditYear, Category: CategorySocial, AGDesignator: "a",
		Aliases: []string{"World Hist Honors", "World History H"}},
	{Name: "AP World History", Credits: CreditYear, Category: CategorySocial, AGDesignator: "a",
		Aliases: []string{"AP World Hist", "APWH"}},
	{Name: "US History", Credits: CreditYear, Category: CategorySocial, AGDesignator: "a",
		Aliases: []string{"U.S. History", "United States History", "US Hist"}},
	{Name: "AP US History", Credits: CreditYear, Category: CategorySocial, AGDesignator: "a",
		Aliases: []string{"APUSH", "AP U.S. History", "AP United States History"}},
	{Name: "US Government", Credits: CreditSemester, Category: CategorySocial, AGDesignator: "a",
		Aliases: []string{"U.S. Government", "Government", "Gov", "US Gov"}},
	{Name: "AP US Government & Politics", Credits: CreditSemester, Category: CategorySocial, AGDesignator: "a",
		Aliases: []string{"AP Gov", "AP Government", "AP US Gov"}},
	{Name: "Economics", Credits: CreditSemester, Category: CategorySocial, AGDesignator: "g",
		Aliases: []string{"Econ"}},
	{Name: "AP Macroeconomics", Credits: CreditSemester, Category: CategorySocial, AGDesignator: "g",
		Aliases: []string{"AP Macro", "Macroeconomics"}},
	{Name: "AP Microeconomics", Credits: CreditSemester, Category: CategorySocial, AGDesignator: "g",
		Aliases: []string{"AP Micro", "Microeconomics"}},
	{Name: "Introduction to Ethnic Studies", Credits: CreditSemester, Category: CategorySocial, AGDesignator: "a",
		Aliases: []string{"Intro to Ethnic Studies", "Ethnic Studies", "Intro Ethnic Studies"}},
	{Name: "AP Psychology", Credits: CreditYear, Category: CategorySocial, AGDesignator: "g",
		Aliases: []string{"AP Psych", "Psychology"}},
	{Name: "AP Human Geography", Credits: CreditYear, Category: CategorySocial, AGDesignator: "a",
		Aliases: []string{"AP Human Geo", "Human Geography"}},

	// Physical Education
	{Name: "PE 9", Credits: CreditYear, Category: CategoryPE,
		Aliases: []string{"PE9", "Physical Education 9", "Phys Ed 9", "PE ninth", "PE 9th", "P.E. 9", "P.E.9"}},
	{Name: "PE 10", Credits: CreditYear, Category: CategoryPE,
		Aliases: []string{"PE10", "Physical Education 10", "Phys Ed 10", "PE tenth", "PE 10th", "P.E. 10", "P.E.10"}},
	{Name: "PE Inclusion", Credits: CreditYear, Category: CategoryPE,
		Aliases: []string{"PE Inc", "Physical Education Inclusion", "Inclusion PE", "P.E. Inclusion", "PE Incl"}},
	{Name: "Racquet Sports", Credits: CreditYear, Category: CategoryPE,
		Aliases: []string{"Racquet"}},
	{Name: "Weight Training", Credits: CreditYear, Category: CategoryPE,
		Aliases: []string{"Weights", "Weight Lifting"}},
	{Name: "Total Fitness", Credits: CreditYear, Category: CategoryPE,
		Aliases: []string{"Fitness"}},
	// Team sports, 5 credits per season.
	{Name: "Basketball", Credits: CreditSemester, Category: CategoryPE,
		Aliases: []string{"BB", "Bball"}},
	{Name: "Volleyball", Credits: CreditSemester, Category: CategoryPE,
		Aliases: []string{"VB", "Vball"}},
	{Name: "Soccer", Credits: CreditSemester, Category: CategoryPE},
	{Name: "Track & Field", Credits: CreditSemester, Category: CategoryPE,
		Aliases: []string{"Track", "Track and Field"}},
	{Name: "Cross Country", Credits: CreditSemester, Category: CategoryPE,
		Aliases: []string{"XC", "CC"}},
	{Name: "Swimming", Credits: CreditSemester, Category: CategoryPE,
		Aliases: []string{"Swim"}},
	{Name: "Wrestling", Credits: CreditSemester, Category: CategoryPE},
	{Name: "Tennis", Credits: CreditSemester, Category: CategoryPE},
	{Name: "Softball", Credits: CreditSemester, Category: CategoryPE},
	{Name: "Baseball", Credits: CreditSemester, Category: CategoryPE},
	{Name: "Football", Credits: CreditSemester, Category: CategoryPE},

	// World Language
	{Name: "Spanish 1", Credits: CreditYear, Category: CategoryLanguage, AGDesignator: "e",
		Aliases: []string{"Spanish I", "Spanish 1st", "Span 1", "Span I"}},
	{Name: "Spanish 2", Credits: CreditYear, Category: CategoryLanguage, AGDesignator: "e",
		Aliases: []string{"Spanish II", "Spanish 2nd", "Span 2", "Span II"}},
	{Name: "Spanish 3", Credits: CreditYear, Category: CategoryLanguage, AGDesignator: "e",
		Aliases: []string{"Spanish III", "Spanish 3rd", "Span 3", "Span III"}},
	{Name: "Spanish 4", Credits: CreditYear, Category: CategoryLanguage, AGDesignator: "e",
		Aliases: []string{"Spanish IV", "Spanish 4th", "Span 4", "Span IV", "Spanish 4 Honors", "Spanish 4H", "Spanish Honors", "Spanish H"}},
	{Name: "AP Spanish Language & Culture", Credits: CreditYear, Category: CategoryLanguage, AGDesignator: "e",
		Aliases: []string{"AP Spanish", "AP Spanish Lang", "AP Spanish Language", "AP Span"}},
	{Name: "French 1", Credits: CreditYear, Category: CategoryLanguage, AGDesignator: "e",
		Aliases: []string{"French I"}},
	{Name: "French 2", Credits: CreditYear, Category: CategoryLanguage, AGDesignator: "e",
		Aliases: []string{"French II"}},
	{Name: "French 3", Credits: CreditYear, Category: CategoryLanguage, AGDesignator: "e",
		Aliases: []string{"French III"}},
	{Name: "French 4", Credits: CreditYear, Category: CategoryLanguage, AGDesignator: "e",
		Aliases: []string{"French IV"}},
	{Name: "AP French Language & Culture", Credits: CreditYear, Category: CategoryLanguage, AGDesignator: "e",
		Aliases: []string{"AP French", "AP French Lang"}},
	{Name: "Mandarin 1", Credits: CreditYear, Category: CategoryLanguage, AGDesignator: "e",
		Aliases: []string{"Mandarin I", "Chinese 1"}},
	{Name: "Mandarin 2", Credits: CreditYear, Category: CategoryLanguage, AGDesignator: "e",
		Aliases: []string{"Mandarin II", "Chinese 2"}},
	{Name: "Mandarin 3", Credits: CreditYear, Category: CategoryLanguage, AGDesignator: "e",
		Aliases: []string{"Mandarin III", "Chinese 3"}},
	{Name: "Mandarin 4", Credits: CreditYear, Category: CategoryLanguage, AGDesignator: "e",
		Aliases: []string{"Mandarin IV", "Chinese 4"}},
	{Name: "AP Chinese Language & Culture", Credits: CreditYear, Category: CategoryLanguage, AGDesignator: "e",
		Aliases: []string{"AP Chinese", "AP Mandarin"}},
	{Name: "Japanese 1", Credits: CreditYear, Category: CategoryLanguage, AGDesignator: "e",
		Aliases: []string{"Japanese I"}},
	{Name: "Japanese 2", Credits: CreditYear, Category: CategoryLanguage, AGDesignator: "e",
		Aliases: []string{"Japanese II"}},
	{Name: "Japanese 3", Credits: CreditYear, Category: CategoryLanguage, AGDesignator: "e",
		Aliases: []string{"Japanese III"}},
	{Name: "Japanese 4", Credits: CreditYear, Category: CategoryLanguage, AGDesignator: "e",
		Aliases: []string{"Japanese IV"}},

	// Applied Academics
	{Name: "AP Computer Science A", Credits: CreditYear, Category: CategoryApplied, AGDesignator: "g",
		Aliases: []string{"AP CS A", "AP Comp Sci A", "APCSA"}},
	{Name: "AP Computer Science Principles", Credits: CreditYear, Category: CategoryApplied, AGDesignator: "g",
		Aliases: []string{"AP CSP", "AP CS Principles", "APCSP"}},
	{Name: "Computer Programming Java", Credits: CreditYear, Category: CategoryApplied, AGDesignator: "g",
		Aliases: []string{"Java Programming", "Java", "Comp Programming"}},
	{Name: "Journalism", Credits: CreditYear, Category: CategoryApplied, AGDesignator: "g",
		Aliases: []string{"Journ"}},
	{Name: "Yearbook", Credits: CreditYear, Category: CategoryApplied},
	{Name: "Stagecraft Tech", Credits: CreditYear, Category: CategoryApplied,
		Aliases: []string{"Stagecraft", "Tech Theatre"}},

	// Visual & Performing Arts
	{Name: "Art 1", Credits: CreditYear, Category: CategoryArts, AGDesignator: "f",
		Aliases: []string{"Art I", "Art"}},
	{Name: "Art 2", Credits: CreditYear, Category: CategoryArts, AGDesignator: "f",
		Aliases: []string{"Art II"}},
	{Name: "AP Studio Art", Credits: CreditYear, Category: CategoryArts, AGDesignator: "f",
		Aliases: []string{"AP Art"}},
	{Name: "Photography", Credits: CreditYear, Category: CategoryArts, AGDesignator: "f",
		Aliases: []string{"Photo"}},
	{Name: "Drama", Credits: CreditYear, Category: CategoryArts, AGDesignator: "f",
		Aliases: []string{"Theatre", "Theater"}},
	{Name: "Band", Credits: CreditYear, Category: CategoryArts, AGDesignator: "f"},
	{Name: "Orchestra", Credits: CreditYear, Category: CategoryArts, AGDesignator: "f"},
	{Name: "Choir", Credits: CreditYear, Category: CategoryArts, AGDesignator: "f",
		Aliases: []string{"Chorus"}},
	{Name: "AP Music Theory", Credits: CreditYear, Category: CategoryArts, AGDesignator: "f",
		Aliases: []string{"Music Theory"}},

	// Health
	{Name: "Health", Credits: CreditSemester, Category: CategoryHealth},
}
