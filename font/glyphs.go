package font

// Default holds a glyph for every printable ASCII character (0x20–0x7E).
var Default = &Table{}

func init() {
	t := Default

	t.Set(' ', ".....", ".....", ".....", ".....", ".....")
	t.Set('!', "..#..", "..#..", "..#..", ".....", "..#..")
	t.Set('"', ".#.#.", ".#.#.", ".....", ".....", ".....")
	t.Set('#', ".#.#.", "#####", ".#.#.", "#####", ".#.#.")
	t.Set('$', ".####", "#.#..", ".###.", "..#.#", "####.")
	t.Set('%', "##..#", "##.#.", "..#..", ".#.##", "#..##")
	t.Set('&', ".##..", "#..#.", ".##..", "#..#.", ".##.#")
	t.Set('\'', "..#..", "..#..", ".....", ".....", ".....")
	t.Set('(', "...#.", "..#..", "..#..", "..#..", "...#.")
	t.Set(')', ".#...", "..#..", "..#..", "..#..", ".#...")
	t.Set('*', ".....", ".#.#.", "..#..", ".#.#.", ".....")
	t.Set('+', ".....", "..#..", ".###.", "..#..", ".....")
	t.Set(',', ".....", ".....", ".....", "..#..", ".#...")
	t.Set('-', ".....", ".....", ".###.", ".....", ".....")
	t.Set('.', ".....", ".....", ".....", ".....", "..#..")
	t.Set('/', "....#", "...#.", "..#..", ".#...", "#....")

	t.Set('0', ".##..", "#..#.", "#..#.", "#..#.", ".##..")
	t.Set('1', "..#..", ".##..", "..#..", "..#..", ".###.")
	t.Set('2', "###..", "...#.", ".##..", "#....", "####.")
	t.Set('3', "####.", "...#.", "..#..", "#..#.", ".##..")
	t.Set('4', "..##.", ".#.#.", "#..#.", "#####", "...#.")
	t.Set('5', "#####", "#....", "####.", "....#", "####.")
	t.Set('6', "...#.", "..#..", ".###.", "#...#", ".###.")
	t.Set('7', "#####", "...#.", "..#..", ".#...", "#....")
	t.Set('8', ".###.", "#...#", ".###.", "#...#", ".###.")
	t.Set('9', ".###.", "#...#", ".###.", "..#..", ".#...")

	t.Set(':', ".....", "..#..", ".....", "..#..", ".....")
	t.Set(';', ".....", "..#..", ".....", "..#..", ".#...")
	t.Set('<', "...#.", "..#..", ".#...", "..#..", "...#.")
	t.Set('=', ".....", ".###.", ".....", ".###.", ".....")
	t.Set('>', ".#...", "..#..", "...#.", "..#..", ".#...")
	t.Set('?', ".###.", "#...#", "..##.", ".....", "..#..")
	t.Set('@', ".##..", "#..#.", "#.#.#", "#..##", ".##..")

	t.Set('A', ".##..", "#..#.", "####.", "#..#.", "#..#.")
	t.Set('B', "###..", "#..#.", "###..", "#..#.", "###..")
	t.Set('C', ".###.", "#....", "#....", "#....", ".###.")
	t.Set('D', "###..", "#..#.", "#..#.", "#..#.", "###..")
	t.Set('E', "####.", "#....", "###..", "#....", "####.")
	t.Set('F', "####.", "#....", "###..", "#....", "#....")
	t.Set('G', ".###.", "#....", "#..##", "#...#", ".###.")
	t.Set('H', "#..#.", "#..#.", "####.", "#..#.", "#..#.")
	t.Set('I', "###..", ".#...", ".#...", ".#...", "###..")
	t.Set('J', "#####", "...#.", "...#.", "#..#.", ".##..")
	t.Set('K', "#..#.", "#.#..", "##...", "#.#..", "#..#.")
	t.Set('L', "#....", "#....", "#....", "#....", "####.")
	t.Set('M', "#...#", "##.##", "#.#.#", "#...#", "#...#")
	t.Set('N', "#...#", "##..#", "#.#.#", "#..##", "#...#")
	t.Set('O', ".##..", "#..#.", "#..#.", "#..#.", ".##..")
	t.Set('P', "###..", "#..#.", "###..", "#....", "#....")
	t.Set('Q', ".##..", "#..#.", "#..#.", ".##..", "...##")
	t.Set('R', "###..", "#..#.", "###..", "#.#..", "#..#.")
	t.Set('S', ".###.", "#....", ".##..", "...#.", "###..")
	t.Set('T', "#####", "..#..", "..#..", "..#..", "..#..")
	t.Set('U', "#..#.", "#..#.", "#..#.", "#..#.", ".##..")
	t.Set('V', "#...#", "#...#", "#...#", ".#.#.", "..#..")
	t.Set('W', "#...#", "#...#", "#.#.#", "##.##", "#...#")
	t.Set('X', "#..#.", "#..#.", ".##..", "#..#.", "#..#.")
	t.Set('Y', "#...#", ".#.#.", "..#..", "..#..", "..#..")
	t.Set('Z', "####.", "..#..", ".#...", "#....", "####.")

	t.Set('[', ".###.", ".#...", ".#...", ".#...", ".###.")
	t.Set('\\', "#....", ".#...", "..#..", "...#.", "....#")
	t.Set(']', ".###.", "...#.", "...#.", "...#.", ".###.")
	t.Set('^', "..#..", ".#.#.", ".....", ".....", ".....")
	t.Set('_', ".....", ".....", ".....", ".....", "#####")
	t.Set('`', ".#...", "..#..", ".....", ".....", ".....")

	t.Set('a', ".....", ".###.", "#..#.", "#..#.", ".####")
	t.Set('b', "#....", "#....", "###..", "#..#.", "###..")
	t.Set('c', ".....", ".###.", "#....", "#....", ".###.")
	t.Set('d', "...#.", "...#.", ".###.", "#..#.", ".###.")
	t.Set('e', ".##..", "#..#.", "####.", "#....", ".###.")
	t.Set('f', "..##.", ".#...", "###..", ".#...", ".#...")
	t.Set('g', ".###.", "#..#.", ".###.", "...#.", ".##..")
	t.Set('h', "#....", "#....", "###..", "#..#.", "#..#.")
	t.Set('i', ".#...", ".....", ".#...", ".#...", ".#...")
	t.Set('j', "...#.", ".....", "...#.", "#..#.", ".##..")
	t.Set('k', "#....", "#.#..", "##...", "#.#..", "#..#.")
	t.Set('l', ".#...", ".#...", ".#...", ".#...", "..#..")
	t.Set('m', ".....", "##.#.", "#.#.#", "#...#", "#...#")
	t.Set('n', ".....", "###..", "#..#.", "#..#.", "#..#.")
	t.Set('o', ".....", ".##..", "#..#.", "#..#.", ".##..")
	t.Set('p', ".....", "###..", "#..#.", "###..", "#....")
	t.Set('q', ".....", ".###.", "#..#.", ".###.", "...#.")
	t.Set('r', ".....", ".###.", "#....", "#....", "#....")
	t.Set('s', ".....", "..##.", ".#...", "..#..", "##...")
	t.Set('t', ".#...", ".#...", ".###.", ".#...", "..##.")
	t.Set('u', ".....", "#..#.", "#..#.", "#..#.", ".###.")
	t.Set('v', ".....", "#...#", "#...#", ".#.#.", "..#..")
	t.Set('w', ".....", "#...#", "#...#", "#.#.#", ".#.#.")
	t.Set('x', ".....", "#..#.", ".##..", ".##..", "#..#.")
	t.Set('y', ".....", "#...#", ".#.#.", "..#..", "##...")
	t.Set('z', ".....", "####.", "..#..", ".#...", "####.")

	t.Set('{', "..##.", "..#..", ".##..", "..#..", "..##.")
	t.Set('|', "..#..", "..#..", "..#..", "..#..", "..#..")
	t.Set('}', ".##..", "..#..", "..##.", "..#..", ".##..")
	t.Set('~', ".....", ".....", ".##.#", "#.##.", ".....")
}
