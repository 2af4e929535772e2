package desktop

var platformKinds = []Kind{KindWin32}

const staticPreference = KindWin32
