package peoplegen

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadNames reads a name list: one name per line, no header. Leading
// and trailing whitespace is trimmed and blank lines are skipped.
func ReadNames(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// LoadNames reads a name list from a file. Errors carry the path.
func LoadNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	defer f.Close()
	names, err := ReadNames(f)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return names, nil
}

// Built-in name lists, used when no file is supplied. Common American
// names; real runs usually feed the much larger Census Bureau lists
// instead.

// DefaultMaleFirstNames is the built-in male first name list.
var DefaultMaleFirstNames = []string{
	"Aaron", "Adam", "Alan", "Albert", "Alexander", "Andrew", "Anthony",
	"Arthur", "Benjamin", "Brian", "Carl", "Charles", "Christopher",
	"Daniel", "David", "Dennis", "Donald", "Douglas", "Edward", "Eric",
	"Frank", "Gary", "George", "Gerald", "Gregory", "Harold", "Henry",
	"Jack", "James", "Jason", "Jeffrey", "John", "Jonathan", "Joseph",
	"Joshua", "Justin", "Keith", "Kenneth", "Kevin", "Larry", "Lawrence",
	"Mark", "Martin", "Matthew", "Michael", "Nathan", "Nicholas",
	"Patrick", "Paul", "Peter", "Philip", "Ralph", "Raymond", "Richard",
	"Robert", "Roger", "Ronald", "Russell", "Ryan", "Samuel", "Scott",
	"Sean", "Stephen", "Steven", "Thomas", "Timothy", "Victor", "Vincent",
	"Walter", "Wayne", "William", "Zachary",
}

// DefaultFemaleFirstNames is the built-in female first name list.
var DefaultFemaleFirstNames = []string{
	"Abigail", "Alice", "Amanda", "Amy", "Andrea", "Angela", "Anna",
	"Barbara", "Betty", "Brenda", "Carol", "Carolyn", "Catherine",
	"Charlotte", "Christine", "Cynthia", "Deborah", "Denise", "Diana",
	"Dorothy", "Elizabeth", "Emily", "Emma", "Frances", "Grace", "Hannah",
	"Heather", "Helen", "Isabella", "Jacqueline", "Janet", "Jean",
	"Jennifer", "Jessica", "Joan", "Joyce", "Judith", "Julia", "Julie",
	"Karen", "Katherine", "Kathleen", "Kelly", "Kimberly", "Laura",
	"Lauren", "Linda", "Lisa", "Madison", "Margaret", "Maria", "Marie",
	"Martha", "Mary", "Megan", "Melissa", "Michelle", "Nancy", "Nicole",
	"Olivia", "Pamela", "Patricia", "Rachel", "Rebecca", "Ruth", "Sandra",
	"Sarah", "Sharon", "Stephanie", "Susan", "Teresa", "Virginia",
}

// DefaultLastNames is the built-in last name list.
var DefaultLastNames = []string{
	"Adams", "Anderson", "Baker", "Barnes", "Bell", "Bennett", "Brooks",
	"Brown", "Butler", "Campbell", "Carter", "Chen", "Clark", "Collins",
	"Cooper", "Cruz", "Davis", "Diaz", "Edwards", "Evans", "Fisher",
	"Flores", "Foster", "Garcia", "Gonzalez", "Gray", "Green", "Hall",
	"Harris", "Hayes", "Henderson", "Hernandez", "Hill", "Howard",
	"Hughes", "Jackson", "James", "Jenkins", "Johnson", "Jones", "Kelly",
	"Kim", "King", "Lee", "Lewis", "Long", "Lopez", "Martin", "Martinez",
	"Miller", "Mitchell", "Moore", "Morgan", "Morris", "Murphy", "Nelson",
	"Nguyen", "Parker", "Patterson", "Perez", "Perry", "Peterson",
	"Phillips", "Powell", "Price", "Ramirez", "Reed", "Reyes",
	"Richardson", "Rivera", "Roberts", "Robinson", "Rodriguez", "Rogers",
	"Ross", "Russell", "Sanchez", "Sanders", "Scott", "Simmons", "Smith",
	"Stewart", "Sullivan", "Taylor", "Thomas", "Thompson", "Torres",
	"Turner", "Walker", "Ward", "Washington", "Watson", "White",
	"Williams", "Wilson", "Wood", "Wright", "Young",
}
